package redis

import "fmt"

// Default key prefix for all registry data
const defaultKeyPrefix = "recruit"

// candidatesKey returns the Redis key for the HASH of candidate id -> JSON record
func candidatesKey(prefix string) string {
	return fmt.Sprintf("%s:candidates", prefix)
}

// candidateOrderKey returns the Redis key for the LIST of candidate ids in insertion order
func candidateOrderKey(prefix string) string {
	return fmt.Sprintf("%s:candidates:order", prefix)
}

// seededKey returns the Redis key marking that the registry has been seeded or reset
func seededKey(prefix string) string {
	return fmt.Sprintf("%s:seeded", prefix)
}
