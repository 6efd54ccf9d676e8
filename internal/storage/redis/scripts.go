package redis

import "github.com/redis/go-redis/v9"

// Each mutation touches both the hash and the order list, so it runs as one
// server-side script. Concurrent writers are serialized by Redis itself.
//
// KEYS[1] is the candidate hash, KEYS[2] the order list.

// insertScript returns 0 when the id is already present, 1 otherwise.
var insertScript = redis.NewScript(`
if redis.call('HSETNX', KEYS[1], ARGV[1], ARGV[2]) == 0 then
	return 0
end
redis.call('RPUSH', KEYS[2], ARGV[1])
return 1
`)

// replaceScript returns 0 when the id is missing. The order list is untouched.
var replaceScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// deleteScript returns the removed record, or nil when the id is missing.
var deleteScript = redis.NewScript(`
local data = redis.call('HGET', KEYS[1], ARGV[1])
if not data then
	return false
end
redis.call('HDEL', KEYS[1], ARGV[1])
redis.call('LREM', KEYS[2], 1, ARGV[1])
return data
`)

// seedScript loads id/record pairs from ARGV unless KEYS[3] marks the registry
// as already seeded. Returns 1 when it wrote, 0 otherwise.
var seedScript = redis.NewScript(`
if not redis.call('SET', KEYS[3], '1', 'NX') then
	return 0
end
redis.call('DEL', KEYS[1], KEYS[2])
for i = 1, #ARGV, 2 do
	redis.call('HSET', KEYS[1], ARGV[i], ARGV[i + 1])
	redis.call('RPUSH', KEYS[2], ARGV[i])
end
return 1
`)
