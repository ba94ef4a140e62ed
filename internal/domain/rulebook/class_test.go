package rulebook_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClass_HitDie(t *testing.T) {
	assert.Equal(t, 12, rulebook.ClassBarbarian.HitDie())
	assert.Equal(t, 10, rulebook.ClassFighter.HitDie())
	assert.Equal(t, 8, rulebook.ClassRogue.HitDie())
}

func TestClass_HasSavingThrowProficiency(t *testing.T) {
	tests := []struct {
		name  string
		class rulebook.Class
		want  map[shared.Attribute]bool
	}{
		{
			name:  "barbarian saves on strength and constitution",
			class: rulebook.ClassBarbarian,
			want: map[shared.Attribute]bool{
				shared.AttributeStrength:     true,
				shared.AttributeConstitution: true,
			},
		},
		{
			name:  "fighter saves on strength and constitution",
			class: rulebook.ClassFighter,
			want: map[shared.Attribute]bool{
				shared.AttributeStrength:     true,
				shared.AttributeConstitution: true,
			},
		},
		{
			name:  "rogue saves on dexterity and intelligence",
			class: rulebook.ClassRogue,
			want: map[shared.Attribute]bool{
				shared.AttributeDexterity:    true,
				shared.AttributeIntelligence: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, attr := range shared.Attributes {
				assert.Equal(t, tt.want[attr], tt.class.HasSavingThrowProficiency(attr), "attribute %s", attr)
			}
		})
	}
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rulebook.Class
		wantErr bool
	}{
		{name: "lowercase", input: "fighter", want: rulebook.ClassFighter},
		{name: "mixed case", input: "Barbarian", want: rulebook.ClassBarbarian},
		{name: "padded", input: "  rogue  ", want: rulebook.ClassRogue},
		{name: "unknown", input: "wizard", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rulebook.ParseClass(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClass_Name(t *testing.T) {
	assert.Equal(t, "Barbarian", rulebook.ClassBarbarian.Name())
	assert.Equal(t, "Fighter", rulebook.ClassFighter.Name())
	assert.Equal(t, "Rogue", rulebook.ClassRogue.Name())
	assert.Equal(t, "Unknown", rulebook.Class("wizard").Name())
}

func TestClassWeights_MatchClasses(t *testing.T) {
	require.Len(t, rulebook.ClassWeights, len(rulebook.Classes))
	for _, class := range rulebook.Classes {
		assert.True(t, class.IsValid())
	}
}
