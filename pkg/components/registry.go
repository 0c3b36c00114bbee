package components

import "github.com/facet-ui/facet/pkg/element"

// Definitions returns the static component definitions, for batch
// initialization over parsed markup and for gallery listings. The theme
// toggle is excluded: its definition is built per instance around a
// theme.Manager.
func Definitions() []*element.Definition {
	return []*element.Definition{
		AlertDef,
		CollapseDef,
		DialogDef,
		DrawerDef,
		DropdownDef,
		TabsDef,
		ToastDef,
		TooltipDef,
	}
}
