// Package jobs provides scheduled background tasks for the payment core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The only scheduled activity in the system is the nightly settlement cycle;
// every other financial mutation happens synchronously inside the command
// that triggered it.
//
// # Available Jobs
//
// 1. RemittanceConsolidationJob - Runs nightly to turn positive daily shop
// balances into payable remittance records net of outstanding debts.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(consolidateHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The consolidation job uses the cron expression "0 21 * * *" (21:00 every
// day, after the delivery day is over). The consolidation is idempotent, so
// an extra run or a missed run never corrupts remittance state: each run
// refreshes pending remittances from the current ledger and debt snapshot.
package jobs
