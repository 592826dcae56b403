// Package jobs provides scheduled background tasks for the canteen service.
//
// Jobs are cron based (github.com/robfig/cron/v3 with a seconds field) and
// only read the ledger through query handlers.
//
// # Available Jobs
//
// 1. PendingOrdersReportJob - logs a summary of the orders still waiting to be served
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getPendingOrdersHandler, cfg.ReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report runs on REPORT_SCHEDULE, every 30 seconds by default.
package jobs
