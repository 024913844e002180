package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseworks/receipts-pipeline/constants"
)

func TestBuildReceiptKey(t *testing.T) {
	jobID := uuid.New()

	key := BuildReceiptKey(jobID, constants.MIMEJPEG)
	assert.True(t, strings.HasPrefix(key, "receipts/"+jobID.String()+"/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	parts := strings.Split(key, "/")
	require.Len(t, parts, 3)
	name := strings.TrimSuffix(parts[2], ".jpg")
	_, err := uuid.Parse(name)
	assert.NoError(t, err, "object name should be a fresh uuid")
}

func TestBuildReceiptKey_UniquePerCall(t *testing.T) {
	jobID := uuid.New()
	a := BuildReceiptKey(jobID, constants.MIMEPNG)
	b := BuildReceiptKey(jobID, constants.MIMEPNG)
	assert.NotEqual(t, a, b)
}

func TestJobKeyPrefixCoversBuiltKeys(t *testing.T) {
	jobID := uuid.New()
	key := BuildReceiptKey(jobID, constants.MIMEWebP)
	assert.True(t, strings.HasPrefix(key, JobKeyPrefix(jobID)))
	assert.False(t, strings.HasPrefix(key, JobKeyPrefix(uuid.New())))
}

func TestKeyJobID(t *testing.T) {
	jobID := uuid.New()
	key := BuildReceiptKey(jobID, constants.MIMEJPEG)

	got, ok := KeyJobID(key)
	require.True(t, ok)
	assert.Equal(t, jobID, got)

	for _, bad := range []string{
		"",
		"receipts",
		"receipts/not-a-uuid/x.jpg",
		"other/" + jobID.String() + "/x.jpg",
		"receipts/" + jobID.String() + "/extra/x.jpg",
	} {
		_, ok := KeyJobID(bad)
		assert.False(t, ok, "key %q should not parse", bad)
	}
}
