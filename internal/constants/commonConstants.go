package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixArrivalsPage CachePrefix = "ARRIVALS_PAGE_"
	CachePrefixBagInfo      CachePrefix = "BAG_INFO_"
	CachePrefixReport       CachePrefix = "REPORT_"
)

const (
	// DisplayCancelled is what a cancelled flight shows in place of a time.
	DisplayCancelled = "CANCELLED"
)
