package roster

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/musterpoint/muster/pkg/catalogs"
	"github.com/musterpoint/muster/pkg/errors"
)

// Raw document shape. Field names match the hand-authored YAML convention.
type rawArmy struct {
	Name        string          `yaml:"Name"`
	Points      *float64        `yaml:"Points"`
	Warlord     string          `yaml:"Warlord"`
	Notes       string          `yaml:"Notes"`
	Detachments []rawDetachment `yaml:"Detachments"`
}

type rawDetachment struct {
	Name  string     `yaml:"Name"`
	Type  string     `yaml:"Type"`
	Units []rawSquad `yaml:"Units"`
}

type rawSquad struct {
	Name       string        `yaml:"Name"`
	Slot       string        `yaml:"Slot"`
	BaseCost   *float64      `yaml:"BaseCost"`
	Items      yaml.MapSlice `yaml:"Items"`
	Notes      string        `yaml:"Notes"`
	Portrait   string        `yaml:"Portrait"`
	Experience int           `yaml:"Experience"`
	Specialist string        `yaml:"Specialist"`
	Demeanour  string        `yaml:"Demeanour"`
}

// ParseFile parses one army-list YAML file.
func ParseFile(path string) (*Army, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(path, data)
}

// Parse parses one army-list document. The file argument is only used in
// error messages and for output naming.
func Parse(file string, data []byte) (*Army, error) {
	var raw rawArmy
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.Strict()); err != nil {
		return nil, errors.NewSchemaError(file, "", err.Error())
	}
	return buildArmy(file, raw)
}

// buildArmy validates the raw document's structural shape and produces
// the typed tree.
func buildArmy(file string, raw rawArmy) (*Army, error) {
	if raw.Name == "" {
		return nil, errors.NewSchemaError(file, "", "army has no Name")
	}
	path := Path{}.Army(raw.Name)

	if raw.Points == nil {
		return nil, errors.NewSchemaError(file, path.String(), "army has no Points limit")
	}
	if *raw.Points < 0 {
		return nil, errors.NewSchemaError(file, path.String(), "Points limit must be non-negative")
	}

	army := &Army{
		Name:        raw.Name,
		PointsLimit: catalogs.Points(*raw.Points),
		Warlord:     raw.Warlord,
		Notes:       raw.Notes,
		File:        file,
	}

	for i, rd := range raw.Detachments {
		detachment, err := buildDetachment(file, path, i, rd)
		if err != nil {
			return nil, err
		}
		army.Detachments = append(army.Detachments, detachment)
	}

	return army, nil
}

func buildDetachment(file string, armyPath Path, index int, raw rawDetachment) (*Detachment, error) {
	if raw.Name == "" {
		return nil, errors.NewSchemaError(file, armyPath.String(),
			fmt.Sprintf("detachment %d has no Name", index+1))
	}
	path := armyPath.Detachment(raw.Name)

	if raw.Type == "" {
		return nil, errors.NewSchemaError(file, path.String(), "detachment has no Type")
	}

	detachment := &Detachment{Name: raw.Name, Type: raw.Type}
	for i, rs := range raw.Units {
		squad, err := buildSquad(file, path, i, rs)
		if err != nil {
			return nil, err
		}
		detachment.Units = append(detachment.Units, squad)
	}

	return detachment, nil
}

func buildSquad(file string, detachmentPath Path, index int, raw rawSquad) (*Squad, error) {
	if raw.Name == "" {
		return nil, errors.NewSchemaError(file, detachmentPath.String(),
			fmt.Sprintf("unit %d has no Name", index+1))
	}
	path := detachmentPath.Squad(raw.Name)

	if raw.Slot == "" {
		return nil, errors.NewSchemaError(file, path.String(), "squad has no Slot")
	}
	if raw.Experience < 0 {
		return nil, errors.NewSchemaError(file, path.String(), "Experience must be non-negative")
	}

	squad := &Squad{
		Name:       raw.Name,
		Slot:       raw.Slot,
		Notes:      raw.Notes,
		Portrait:   raw.Portrait,
		Experience: raw.Experience,
		Specialist: raw.Specialist,
		Demeanour:  raw.Demeanour,
	}

	if raw.BaseCost != nil {
		if *raw.BaseCost < 0 {
			return nil, errors.NewCostOverrideError(path.String(), "BaseCost", *raw.BaseCost,
				"must be non-negative")
		}
		squad.BaseCost = catalogs.Points(*raw.BaseCost)
	}

	for _, entry := range raw.Items {
		name, ok := entry.Key.(string)
		if !ok || name == "" {
			return nil, errors.NewSchemaError(file, path.String(),
				fmt.Sprintf("item name %v is not a string", entry.Key))
		}
		quantity, err := itemQuantity(entry.Value)
		if err != nil {
			return nil, errors.NewSchemaError(file, path.Item(name).String(), err.Error())
		}
		if quantity < 0 {
			return nil, errors.NewCostOverrideError(path.Item(name).String(), "quantity", quantity,
				"must be non-negative")
		}
		squad.Items = append(squad.Items, Item{Name: name, Quantity: quantity})
	}

	return squad, nil
}

// itemQuantity converts a decoded YAML scalar into an item quantity.
// Quantities must be whole numbers.
func itemQuantity(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("quantity must be a whole number, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("quantity %v is not a number", v)
	}
}
