package initializers

import (
	"jd-generator-backend/config"
	"jd-generator-backend/fiberlog"
	jobdeschandler "jd-generator-backend/lib/job-description"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	jobdeschandler.NewHandler()
}
