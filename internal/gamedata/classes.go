package gamedata

// StatBlock groups the six core stats shared by class bases and per-level
// growth tables.
type StatBlock struct {
	HP           int `json:"hp"`
	MP           int `json:"mp"`
	Attack       int `json:"attack"`
	Defense      int `json:"defense"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
}

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID          string    `json:"id"`          // Unique identifier (e.g., "warrior")
	Name        string    `json:"name"`        // Display name (e.g., "Warrior")
	Description string    `json:"description"` // One-line blurb shown at creation
	Stats       StatBlock `json:"stats"`       // Level 1 base stats
	Growth      StatBlock `json:"growth"`      // Stat gains per level
	Skills      []string  `json:"skills"`      // Skill IDs this class starts with
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}
