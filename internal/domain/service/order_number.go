package service

// OrderNumberGenerator produces human-facing order numbers that are unique
// without a database round trip.
type OrderNumberGenerator interface {
	Next() (string, error)
}
