package kms

import "hash/crc32"

// Checksum computes the transport checksum the signing service uses for corruption detection.
type Checksum func(data []byte) uint32

// CRC32C returns the Castagnoli CRC32 checksum used by Cloud KMS.
func CRC32C() Checksum {
	table := crc32.MakeTable(crc32.Castagnoli)
	return func(data []byte) uint32 {
		return crc32.Checksum(data, table)
	}
}
