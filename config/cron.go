package config

import (
	"admybrand.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"catalogcache": {Schedule: "0 * * * *", Job: jobs.CatalogCacheJob},
	// Add more jobs here
}
