package booking

import "github.com/titikcuci/booking-service/pkg/txmanager"

// DBExecutor is what the repository needs from *sql.DB; an open *sql.Tx in
// the context takes precedence via txmanager.GetExecutor.
type DBExecutor = txmanager.Executor
