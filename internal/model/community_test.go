package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCommunityPath_Kind(t *testing.T) {
	sourceID := uuid.New()
	parentID := uuid.New()

	original := &CommunityPath{SourceLearningPathID: &sourceID, RootPathID: sourceID}
	assert.Equal(t, PublicationOriginal, original.Kind())
	assert.True(t, original.IsConsistent())

	fork := &CommunityPath{ParentPathID: &parentID, RootPathID: parentID}
	assert.Equal(t, PublicationFork, fork.Kind())
	assert.True(t, fork.IsConsistent())
}

func TestCommunityPath_IsConsistent(t *testing.T) {
	sourceID := uuid.New()
	parentID := uuid.New()

	// source と parent の両方が設定されているのは不整合
	both := &CommunityPath{SourceLearningPathID: &sourceID, ParentPathID: &parentID}
	assert.False(t, both.IsConsistent())

	// どちらもないのも不整合
	neither := &CommunityPath{}
	assert.False(t, neither.IsConsistent())
}
