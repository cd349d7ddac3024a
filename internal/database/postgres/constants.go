package postgres

// Error Messages - Empire Operations
const (
	ErrMsgFailedToQueryStars        = "failed to query stars"
	ErrMsgFailedToScanStar          = "failed to scan star row"
	ErrMsgFailedToDecodeStar        = "failed to decode star snapshot"
	ErrMsgFailedToEncodeStar        = "failed to encode star snapshot"
	ErrMsgFailedToSaveStar          = "failed to save star"
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)
