package widgets

import "gioui.org/widget/material"

// Theme is shared by every widget in this package. Set it before the first frame.
var Theme = material.NewTheme()
