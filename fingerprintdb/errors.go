// errors.go -- sentinel errors for fingerprintdb
package fingerprintdb

import "errors"

var (
	// ErrFrozen is returned when attempting to add new records to an
	// already frozen writer, or to freeze a writer twice.
	ErrFrozen = errors.New("fingerprintdb: already frozen")

	// ErrExists is returned when a duplicate content fingerprint is added.
	ErrExists = errors.New("fingerprintdb: fingerprint exists")

	// ErrValueTooLarge is returned if a payload exceeds 2^32-1 bytes.
	ErrValueTooLarge = errors.New("fingerprintdb: payload too large")

	// ErrNotFound is returned when a fingerprint has no matching record.
	ErrNotFound = errors.New("fingerprintdb: no such fingerprint")

	// ErrCorrupt is returned when a record or table checksum fails.
	ErrCorrupt = errors.New("fingerprintdb: corrupt database")
)

func errShortWrite(n int) error {
	return errors.New("fingerprintdb: incomplete write")
}
