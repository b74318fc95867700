package user

import "github.com/m04kA/SMC-TimeSlotService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
