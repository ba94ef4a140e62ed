package shared

// Attribute identifies one of the six core ability scores
type Attribute string

// Attributes lists every attribute in sheet order
var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Str"
	AttributeDexterity    Attribute = "Dex"
	AttributeConstitution Attribute = "Con"
	AttributeIntelligence Attribute = "Int"
	AttributeWisdom       Attribute = "Wis"
	AttributeCharisma     Attribute = "Cha"
)

// Short returns the three-letter abbreviation used on the sheet
func (a Attribute) Short() string {
	return string(a)
}
