package view

var (
	periodEditButtons = []Button{
		{"Enter", "Save"},
		{"Ctrl+D", "Delete"},
		{"Ctrl+Y", "Copy"},
		{"Esc", "Cancel"},
	}
	periodAddButtons = []Button{
		{"Enter", "Add"},
		{"Esc", "Cancel"},
	}
	confirmDeleteButtons = []Button{
		{"y/Enter", "Delete"},
		{"n/Esc", "Keep"},
	}
)

// PeriodFormFooter renders the footer for the add/edit period modal.
func PeriodFormFooter(editing bool, styles ModalStyles) string {
	if editing {
		return RenderModalButtons(styles, true, periodEditButtons...)
	}
	return RenderModalButtons(styles, false, periodAddButtons...)
}

// ConfirmDeleteFooter renders the footer for the confirm delete modal.
func ConfirmDeleteFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, false, confirmDeleteButtons...)
}
