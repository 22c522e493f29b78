package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Application configuration
	FeedsDir          string
	Port              string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string
	LenientGUID       bool

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
