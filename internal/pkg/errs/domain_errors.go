package errs

// Sentinels shared by the cache, lock, id and order layers.
// Business outcomes of a seckill attempt are reported as result values; these
// sentinels only travel as errors where a caller has to decide on a retry policy.
var (
	// Benign miss. Cached as a negative entry by the pass-through reader.
	ErrNotFound = New("not found")

	// Transient, retryable by caller policy.
	ErrLockBusy    = New("lock busy")
	ErrLockTimeout = New("lock wait timed out")

	// Terminal for the current attempt.
	ErrStockExhausted = New("stock exhausted")
	ErrDuplicateOrder = New("duplicate order")

	// I/O failure against Redis or PostgreSQL. Retried by callers with backoff, never swallowed.
	ErrTransientStore = New("transient store error")

	// Stock went negative or a second order appeared for one user/voucher pair.
	// Always logged at error level and never corrected automatically.
	ErrConsistencyViolation = New("consistency violation")
)
