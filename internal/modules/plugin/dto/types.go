package dto

type PluginInfo struct {
	Name    string
	Version string
	Binary  string
	Enabled bool
}

type DoctorResult struct {
	Name            string
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}

type ReportInfo struct {
	ID          string
	Title       string
	Description string
	Format      string
	TimeoutMS   int
}

type RenderInput struct {
	PluginName string
	ReportID   string
}

type RenderOutput struct {
	PluginName string
	ReportID   string
	Format     string
	Content    string
}
