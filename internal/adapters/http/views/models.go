package views

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Layout carries what every page shares.
type Layout struct {
	Title string
	Nav   []NavItem
	Flash *Flash
}

// NavItem is one link of the top menu.
type NavItem struct {
	Label  string
	Path   string
	Active bool
}

// Flash is a one-shot message shown above the page content.
type Flash struct {
	Kind    string
	Message string
}

// DashboardPage is the home page.
type DashboardPage struct {
	Layout Layout
	Tiles  []Tile
}

// Tile summarizes one resource on the dashboard.
type Tile struct {
	Label   string
	Path    string
	NewPath string
	Count   int
	Error   string
}

// TeamPage lists the project members.
type TeamPage struct {
	Layout  Layout
	Members []Member
}

// Member is one project member with their enrollment number.
type Member struct {
	Name string
	RM   string
}

// Team is the static member list of the "Sobre a Equipe" page.
var Team = []Member{
	{Name: "Gustavo", RM: "561055"},
	{Name: "Arthur", RM: "560820"},
}

// ListPage is a resource table.
type ListPage struct {
	Layout  Layout
	Heading string
	NewPath string
	// NewLabel is empty for list-only resources.
	NewLabel string
	Columns  []string
	Rows     []Row
	Empty    string
	Error    string
}

// Row is one record of a ListPage. EditPath and DeletePath are empty for
// list-only resources.
type Row struct {
	ID          int64
	Cells       []string
	EditPath    string
	DeletePath  string
	ConfirmText string
}

// FormPage is a create or edit form.
type FormPage struct {
	Layout      Layout
	Heading     string
	Action      string
	BackPath    string
	SubmitLabel string
	Fields      []FieldView
	Error       string
	Success     string
	// LoadFailed hides the form; only Error is shown.
	LoadFailed bool
}

// FieldView is one rendered form control.
type FieldView struct {
	Name     string
	ID       string
	Label    string
	Type     string
	Value    string
	Step     string
	Checked  bool
	Required bool
	Options  []OptionView
	Error    string
	// KeptName and Kept echo a stored enum value outside the options.
	KeptName string
	Kept     string
}

// OptionView is one <option> of a select.
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// ErrorPage is a full-page error.
type ErrorPage struct {
	Layout   Layout
	Heading  string
	Message  string
	BackPath string
}
