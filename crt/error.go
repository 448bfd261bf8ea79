package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// InvalidCapacity - Custom error to inform that a hash table was requested with a capacity less than one bucket
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that the requested capacity can not be used
func (E InvalidCapacity) Error() string {
	if E.msg == "" {
		return "capacity must be a positive value higher than 0 (zero)"
	}
	return E.msg
}

// UnknownHashAlgorithm - Custom error to inform that a hash algorithm was requested by a name that is not recognized
type UnknownHashAlgorithm struct {
	msg string
}

// Error - Used to notify that the hash algorithm name is not recognized
func (U UnknownHashAlgorithm) Error() string {
	if U.msg == "" {
		return "unknown hash algorithm"
	}
	return U.msg
}
