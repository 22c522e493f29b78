package tasks

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application and the API layer to manage background feed
// processing.
// Example usage:
//
//	scheduler := NewScheduler(configCache, feedRepo, episodeRepo, httpClient, parser)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewProcessFeedTask(...))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
