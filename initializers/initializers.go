package initializers

import (
	"careers-backend/config"
	"careers-backend/fiberlog"
	applicationhandler "careers-backend/lib/application"
	"careers-backend/lib/event"
	xlsexport "careers-backend/lib/export/xls"
	filestorage "careers-backend/lib/file-storage"
	locationhandler "careers-backend/lib/location"
	"careers-backend/lib/notification"
	positionhandler "careers-backend/lib/position"
	"context"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	event.Init()
	filestorage.NewHandler()
	locationhandler.NewHandler()
	positionhandler.NewHandler()
	applicationhandler.NewHandler()
	notification.NewHandler()
	xlsexport.NewHandler()
}
