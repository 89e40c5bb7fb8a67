package database

import (
	"gorm.io/gorm"

	"melodee/internal/models"
)

var jobSettings = []catalogSetting{
	{1400, models.SettingCategoryJobs, "jobs.artistHousekeeping.cronExpression", "0 0 0/1 1/1 * ? *",
		"Cron expression to run the artist housekeeping job, set empty to disable. Default of '0 0 0/1 1/1 * ? *' will run every hour."},
	{1401, models.SettingCategoryJobs, "jobs.libraryProcess.cronExpression", "0 */10 * ? * *",
		"Cron expression to run the library process job, set empty to disable. Default of '0 */10 * ? * *' Every 10 minutes."},
	{1402, models.SettingCategoryJobs, "jobs.libraryInsert.cronExpression", "0 0 0 * * ?",
		"Cron expression to run the library scan job, set empty to disable. Default of '0 0 0 * * ?' will run every day at 00:00."},
	{1403, models.SettingCategoryJobs, "jobs.musicbrainzUpdateDatabase.cronExpression", "0 0 12 1 * ?",
		"Cron expression to run the musicbrainz database house keeping job, set empty to disable. Default of '0 0 12 1 * ?' will run first day of the month."},
	{1404, models.SettingCategoryJobs, "jobs.artistSearchEngineHousekeeping.cronExpression", "0 0 0 * * ?",
		"Cron expression to run the artist search engine house keeping job, set empty to disable. Default of '0 0 0 * * ?' will run every day at 00:00."},
}

func migrationJobConfiguration() Migration {
	return Migration{
		ID:      "0007_job_configuration",
		Comment: "seed job scheduler cron expressions",
		Up: func(tx *gorm.DB) error {
			for _, setting := range jobSettings {
				if err := insertSetting(tx, setting.ID, setting.Category, setting.Key, setting.Value, setting.Comment); err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(tx *gorm.DB) error {
			for i := len(jobSettings) - 1; i >= 0; i-- {
				if err := deleteSetting(tx, jobSettings[i].ID); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
