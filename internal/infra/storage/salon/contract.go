package salon

import "github.com/ciphersage74/elegancecoiffure/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
