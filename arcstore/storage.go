package arcstore

// storage is a key-value backend holding named archives.
type storage interface {
	BeginTx(writable bool) (storageTx, error)
	Close() error
}

type storageTx interface {
	Writable() bool

	// Bucket returns nil if the bucket doesn't exist.
	Bucket(name string) storageBucket

	// CreateBucket creates a bucket if it doesn't exist.
	CreateBucket(name string) (storageBucket, error)

	Commit() error

	// Rollback aborts the transaction. Safe to call after Commit.
	Rollback() error
}

// storageBucket is a sorted key-value collection. Values returned by Get and
// the cursor are only valid until the transaction ends.
type storageBucket interface {
	Get(key []byte) []byte
	Put(key, value []byte) error
	Delete(key []byte) error
	Cursor() storageCursor
}

type storageCursor interface {
	First() (key, value []byte)
	Next() (key, value []byte)
}
