package scheduler

import (
	"time"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
	"github.com/robfig/cron/v3"
)

// PostPublisher flips scheduled blog posts to published once their time passes
type PostPublisher struct {
	cron        *cron.Cron
	postService service.PostService
}

func NewPostPublisher(postService service.PostService) *PostPublisher {
	return &PostPublisher{
		cron:        cron.New(),
		postService: postService,
	}
}

// Start registers the sweep to run every five minutes
func (s *PostPublisher) Start() error {
	_, err := s.cron.AddFunc("*/5 * * * *", func() {
		published, err := s.postService.PublishScheduled(time.Now())
		if err != nil {
			logger.Error("Scheduled post publish sweep failed", err)
			return
		}
		if published > 0 {
			logger.Info("Published scheduled posts", map[string]interface{}{
				"count": published,
			})
		}
	})
	if err != nil {
		logger.Error("Failed to register post publish cron job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Post publish scheduler started (every 5 minutes)", nil)
	return nil
}

// Stop halts the scheduler
func (s *PostPublisher) Stop() {
	s.cron.Stop()
	logger.Info("Post publish scheduler stopped", nil)
}
