package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_SetMetadata(t *testing.T) {
	log := &AuditLog{}
	log.SetMetadata("amount", "1200")
	log.SetMetadata("category", "Fuel")

	assert.Equal(t, JSONBMap{"amount": "1200", "category": "Fuel"}, log.Metadata)
}

func TestAuditLog_Summary(t *testing.T) {
	id := uuid.New()
	log := &AuditLog{Action: AuditActionDelete, Resource: AuditResourceExpense, ResourceID: id.String()}
	assert.Equal(t, "delete expense "+id.String(), log.Summary())

	log = &AuditLog{Action: AuditActionLogin, Resource: AuditResourceUser}
	assert.Equal(t, "login user", log.Summary())
}

func TestJSONBMap_ValueAndScan(t *testing.T) {
	empty := JSONBMap{}
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	m := JSONBMap{"month": "2024-03"}
	v, err = m.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"month":"2024-03"}`, v)

	var scanned JSONBMap
	require.NoError(t, scanned.Scan([]byte(`{"month":"2024-03"}`)))
	assert.Equal(t, m, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	assert.Error(t, scanned.Scan(42))
}
