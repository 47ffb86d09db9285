package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEditableRecord_StartsUnmodified(t *testing.T) {
	r := NewEditableRecord(Entity{ID: "1", Name: "A"})

	assert.False(t, r.IsModified())
	assert.Equal(t, "1", r.ID())
	assert.Equal(t, "A", r.Model().Name)
}

func TestEditableRecord_SettersMarkModified(t *testing.T) {
	tests := []struct {
		name string
		edit func(r *EditableRecord)
		want Entity
	}{
		{name: "name", edit: func(r *EditableRecord) { r.SetName("A2") }, want: Entity{ID: "1", Name: "A2", Price: 1}},
		{name: "description", edit: func(r *EditableRecord) { r.SetDescription("d") }, want: Entity{ID: "1", Name: "A", Description: "d", Price: 1}},
		{name: "price", edit: func(r *EditableRecord) { r.SetPrice(9.5) }, want: Entity{ID: "1", Name: "A", Price: 9.5}},
		// rewriting the current value still counts as a modification
		{name: "same value", edit: func(r *EditableRecord) { r.SetName("A") }, want: Entity{ID: "1", Name: "A", Price: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewEditableRecord(Entity{ID: "1", Name: "A", Price: 1})
			tt.edit(&r)

			assert.True(t, r.IsModified())
			assert.Equal(t, tt.want, r.Model())
		})
	}
}

func TestEditableRecord_CopyDoesNotAlias(t *testing.T) {
	r := NewEditableRecord(Entity{ID: "1", Name: "A"})
	cp := r
	cp.SetName("B")

	assert.Equal(t, "A", r.Model().Name)
	assert.False(t, r.IsModified())
}

func TestEntity_SameFieldsIgnoresTimestamps(t *testing.T) {
	a := Entity{ID: "1", Name: "A", CreatedAt: time.Unix(1, 0)}
	b := Entity{ID: "1", Name: "A", CreatedAt: time.Unix(2, 0)}

	assert.True(t, a.SameFields(b))
	b.Price = 3
	assert.False(t, a.SameFields(b))
}

func TestSyncState_String(t *testing.T) {
	assert.Equal(t, "idle", SyncStateIdle.String())
	assert.Equal(t, "loading", SyncStateLoading.String())
	assert.Equal(t, "syncing", SyncStateSyncing.String())
	assert.Equal(t, "unknown", SyncState(42).String())
}

func TestListSnapshot_ModifiedCount(t *testing.T) {
	a := NewEditableRecord(Entity{ID: "1"})
	b := NewEditableRecord(Entity{ID: "2"})
	b.SetPrice(2)

	assert.Equal(t, 1, ListSnapshot{Records: []EditableRecord{a, b}}.ModifiedCount())
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "version 1.0.0, built N/A, commit N/A", info.String())
}
