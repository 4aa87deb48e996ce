package okx

const (
	Name = "≪okx-client≫"

	AccessKeyHeader        = "OK-ACCESS-KEY"
	AccessSignHeader       = "OK-ACCESS-SIGN"
	AccessTimestampHeader  = "OK-ACCESS-TIMESTAMP"
	AccessPassphraseHeader = "OK-ACCESS-PASSPHRASE"
	SimulatedTradingHeader = "x-simulated-trading"

	// TimestampLayout is ISO-8601 UTC with millisecond precision and a literal Z.
	TimestampLayout = "2006-01-02T15:04:05.000Z"

	BaseURL = "https://www.okx.com"

	BalanceURL           = "/api/v5/account/balance"
	PositionsURL         = "/api/v5/account/positions"
	FillsURL             = "/api/v5/trade/fills"
	BillsURL             = "/api/v5/account/bills"
	BillsArchiveURL      = "/api/v5/account/bills-archive"
	InterestAccruedURL   = "/api/v5/account/interest-accrued"
	AssetBillsURL        = "/api/v5/asset/bills"
	InstrumentsURL       = "/api/v5/public/instruments"
	DepositHistoryURL    = "/api/v5/asset/deposit-history"
	WithdrawalHistoryURL = "/api/v5/asset/withdrawal-history"

	DefaultTrailSize = 32
)
