// Package catalog holds furniture specifications and the built-in per-room
// catalogs used when a caller does not supply explicit furniture requirements.
//
// Catalogs are immutable configuration decoded from TOML at construction
// time; there is no module-level mutable state. The built-in defaults are
// embedded in the binary and can be replaced by loading a catalog file with
// the same schema.
package catalog

import (
	_ "embed"
	"os"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/roomforge/roomforge/pkg/errors"
)

//go:embed catalogs.toml
var builtinTOML []byte

// Spec describes one furniture requirement. Lower priority places first.
// MinRoomWidth, when set, excludes the item from rooms narrower than that.
type Spec struct {
	Type         string  `toml:"type" json:"type"`
	Width        float64 `toml:"width" json:"width"`
	Depth        float64 `toml:"depth" json:"depth"`
	Priority     int     `toml:"priority" json:"priority"`
	MinRoomWidth float64 `toml:"min_room_width,omitempty" json:"min_room_width,omitempty"`
}

// Config is an immutable set of room-type catalogs.
type Config struct {
	rooms map[string][]Spec
}

// tomlFile is the on-disk/embedded schema.
type tomlFile struct {
	Rooms map[string][]Spec `toml:"rooms"`
}

var defaultConfig = sync.OnceValue(func() Config {
	cfg, err := parse(builtinTOML)
	if err != nil {
		// The embedded catalog ships with the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(err)
	}
	return cfg
})

// Default returns the built-in catalogs (kitchen, living-room, bedroom,
// dining-room). The returned Config is shared and must not be mutated.
func Default() Config {
	return defaultConfig()
}

// Load reads a catalog configuration file in the same TOML schema as the
// built-in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading catalog %s", path)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decoding catalog")
	}
	for roomType, specs := range file.Rooms {
		for _, s := range specs {
			if err := ValidateSpec(s); err != nil {
				return Config{}, errors.Wrap(errors.ErrCodeInvalidCatalog, err,
					"catalog %q entry %q", roomType, s.Type)
			}
		}
	}
	return Config{rooms: file.Rooms}, nil
}

// ValidateSpec checks a single furniture spec for contract violations.
func ValidateSpec(s Spec) error {
	if s.Type == "" {
		return errors.New(errors.ErrCodeInvalidFurniture, "furniture type is required")
	}
	if s.Width <= 0 || s.Depth <= 0 {
		return errors.New(errors.ErrCodeInvalidFurniture,
			"%s has non-positive footprint %.2fm x %.2fm", s.Type, s.Width, s.Depth)
	}
	if s.MinRoomWidth < 0 {
		return errors.New(errors.ErrCodeInvalidFurniture,
			"%s has negative min_room_width %.2fm", s.Type, s.MinRoomWidth)
	}
	return nil
}

// For returns the catalog for the given room type.
// The returned slice is a copy; callers may reorder it freely.
func (c Config) For(roomType string) ([]Spec, error) {
	specs, ok := c.rooms[roomType]
	if !ok {
		return nil, errors.New(errors.ErrCodeCatalogNotFound,
			"no built-in catalog for room type %q (have %v)", roomType, c.RoomTypes())
	}
	return slices.Clone(specs), nil
}

// RoomTypes returns the available room types in sorted order.
func (c Config) RoomTypes() []string {
	types := make([]string, 0, len(c.rooms))
	for t := range c.rooms {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
