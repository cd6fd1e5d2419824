package summarize

import "fmt"

// StorageReadError indicates that a source object could not be fetched or
// decoded from storage.
type StorageReadError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read s3://%s/%s: %v", e.Bucket, e.Key, e.Err)
}

func (e *StorageReadError) Cause() error  { return e.Err }
func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError indicates that a summary object could not be persisted.
type StorageWriteError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("write s3://%s/%s: %v", e.Bucket, e.Key, e.Err)
}

func (e *StorageWriteError) Cause() error  { return e.Err }
func (e *StorageWriteError) Unwrap() error { return e.Err }

// InferenceError indicates that the model invocation failed or returned a
// response that could not be interpreted. Failure causes are not
// distinguished; rate limits, malformed responses and network errors are
// reported identically.
type InferenceError struct {
	ModelID string
	Err     error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("invoke model '%s': %v", e.ModelID, e.Err)
}

func (e *InferenceError) Cause() error  { return e.Err }
func (e *InferenceError) Unwrap() error { return e.Err }

// BatchAbortError wraps the first record failure in a batch. Records after
// the failing one are not attempted.
type BatchAbortError struct {
	Key string
	Err error
}

func (e *BatchAbortError) Error() string {
	return fmt.Sprintf("record '%s' aborted batch: %v", e.Key, e.Err)
}

func (e *BatchAbortError) Cause() error  { return e.Err }
func (e *BatchAbortError) Unwrap() error { return e.Err }
