package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]KV {
	badgerKV, err := OpenBadger("", true)
	require.NoError(t, err)
	t.Cleanup(func() { badgerKV.Close() })

	return map[string]KV{
		"memory": OpenMemory(),
		"badger": badgerKV,
	}
}

func TestGetSetDelete(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get("missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, kv.Set("event_1", []byte(`{"id":"1"}`)))
			value, err := kv.Get("event_1")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"1"}`, string(value))

			// Overwrite
			require.NoError(t, kv.Set("event_1", []byte(`{"id":"1","title":"x"}`)))
			value, err = kv.Get("event_1")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"1","title":"x"}`, string(value))

			require.NoError(t, kv.Delete("event_1"))
			_, err = kv.Get("event_1")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			// Deleting a missing key is a no-op
			assert.NoError(t, kv.Delete("event_1"))
		})
	}
}

func TestKeysPrefix(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Set("rsvp_10_u1", []byte("a")))
			require.NoError(t, kv.Set("rsvp_10_u2", []byte("b")))
			require.NoError(t, kv.Set("rsvp_20_u1", []byte("c")))
			require.NoError(t, kv.Set("rating_10", []byte("d")))

			keys, err := kv.Keys("rsvp_10_")
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"rsvp_10_u1", "rsvp_10_u2"}, keys)

			keys, err = kv.Keys("rsvp_")
			require.NoError(t, err)
			assert.Len(t, keys, 3)

			keys, err = kv.Keys("nothing_")
			require.NoError(t, err)
			assert.Empty(t, keys)
		})
	}
}

func TestApplyBatch(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Set("stale", []byte("old")))

			batch := NewBatch()
			require.NoError(t, batch.SetJSON("event_5", map[string]string{"id": "5"}))
			batch.Set["attendees_5"] = []byte("[]")
			batch.Delete = append(batch.Delete, "stale")

			require.NoError(t, kv.Apply(batch))

			_, err := kv.Get("event_5")
			assert.NoError(t, err)
			_, err = kv.Get("attendees_5")
			assert.NoError(t, err)
			_, err = kv.Get("stale")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestJSONHelpers(t *testing.T) {
	DB = OpenMemory()

	type record struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}

	require.NoError(t, SetJSON("event_1", record{ID: "1", Count: 3}))

	var out record
	require.NoError(t, GetJSON("event_1", &out))
	assert.Equal(t, record{ID: "1", Count: 3}, out)

	err := GetJSON("event_2", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestEntityLock(t *testing.T) {
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := Lock("event_1")
			counter++
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "event_42", EventKey("42"))
	assert.Equal(t, "attendees_42", AttendeesKey("42"))
	assert.Equal(t, "rating_42", RatingKey("42"))
	assert.Equal(t, "rsvp_42_u1", RSVPKey("42", "u1"))
	assert.Equal(t, "rsvp_42_", RSVPPrefix("42"))
	assert.Equal(t, "notifications_u1", NotificationsKey("u1"))
	assert.Equal(t, "user_profile_u1", UserProfileKey("u1"))
	assert.Equal(t, "user_statistics_u1", UserStatisticsKey("u1"))
	assert.Equal(t, "event_history_u1_organized", EventHistoryKey("u1", "organized"))
}
