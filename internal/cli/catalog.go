package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roomforge/roomforge/pkg/catalog"
)

// catalogCommand creates the catalog command for inspecting furniture catalogs.
func (c *CLI) catalogCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "catalog [room-type]",
		Short: "Show the built-in furniture catalogs",
		Long: `Show the built-in furniture catalogs.

Without arguments, lists all available room types. With a room type,
prints its furniture specifications: footprint, placement priority, and
any minimum room width requirement.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := catalog.Default()
			if catalogPath != "" {
				var err error
				if cfg, err = catalog.Load(catalogPath); err != nil {
					return err
				}
			}
			if len(args) == 0 {
				return listRoomTypes(cfg)
			}
			return showCatalog(cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "custom furniture catalog (TOML)")

	return cmd
}

func listRoomTypes(cfg catalog.Config) error {
	fmt.Println(StyleTitle.Render("Room types"))
	for _, t := range cfg.RoomTypes() {
		specs, err := cfg.For(t)
		if err != nil {
			return err
		}
		printKeyValue(t, fmt.Sprintf("%d furniture items", len(specs)))
	}
	printNewline()
	printNextStep("Inspect one", appName+" catalog kitchen")
	return nil
}

func showCatalog(cfg catalog.Config, roomType string) error {
	specs, err := cfg.For(roomType)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(strings.ToTitle(roomType[:1]) + roomType[1:]))
	for _, s := range specs {
		detail := fmt.Sprintf("%.1fm x %.1fm, priority %d", s.Width, s.Depth, s.Priority)
		if s.MinRoomWidth > 0 {
			detail += fmt.Sprintf(", needs %.1fm room width", s.MinRoomWidth)
		}
		printKeyValue(s.Type, detail)
	}
	return nil
}
