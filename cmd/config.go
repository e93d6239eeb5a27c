package cmd

type Config struct {
	HTTPPort        string
	Mode            string
	WatchSchedule   string
	DropDir         string
	ArchiveDir      string
	LabelTempDir    string
	RunLogPath      string
	PdftkPath       string
	GoogleAPIKey    string
	LasershipAPIID  string
	LasershipAPIKey string
	LasershipTest   bool
}
