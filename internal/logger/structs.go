package logger

// Console configures logging to stderr.
type Console struct {
	Enabled bool
	// UseConsoleWriter switches from JSON lines to human readable output.
	UseConsoleWriter bool
	NoColor          bool
}

// LogFile configures rolling log files, one per level group.
type LogFile struct {
	Enabled bool
	Path    string

	ErrorLog        string
	ErrorMaxSize    int // megabytes
	ErrorMaxBackups int
	ErrorMaxAge     int // days

	InfoLog        string
	InfoMaxSize    int
	InfoMaxBackups int
	InfoMaxAge     int

	TraceLog        string
	TraceMaxSize    int
	TraceMaxBackups int
	TraceMaxAge     int

	WarnLog        string
	WarnMaxSize    int
	WarnMaxBackups int
	WarnMaxAge     int
}

// Log implements the logger config.
type Log struct {
	LogLevel     string // trace, debug, info, warn, error, fatal, panic, disabled
	ReportCaller bool

	AppName     string
	ServiceName string

	Console Console
	File    LogFile
}
