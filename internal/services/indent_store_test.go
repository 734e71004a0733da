package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

type TieredIndentStoreTestSuite struct {
	suite.Suite
	remote  *MockIndentStore
	local   *MockIndentStore
	store   *TieredIndentStore
	indent  *models.IndentRecord
	context context.Context
}

func (suite *TieredIndentStoreTestSuite) SetupTest() {
	suite.remote = new(MockIndentStore)
	suite.local = new(MockIndentStore)
	suite.store = NewTieredIndentStore(suite.remote, suite.local)
	suite.context = context.Background()

	indent, err := models.NewBulkOrder(uuid.New(), "Hotel Grand",
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 120, "milk")
	assert.NoError(suite.T(), err)
	suite.indent = indent
}

func TestTieredIndentStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TieredIndentStoreTestSuite))
}

func (suite *TieredIndentStoreTestSuite) TestSave_RemoteHealthy() {
	suite.remote.On("Save", suite.context, suite.indent).Return(nil)

	tier, err := suite.store.Save(suite.context, suite.indent)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), TierRemote, tier)
	suite.local.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *TieredIndentStoreTestSuite) TestSave_StorageFailureBuffersLocally() {
	storageErr := common.WrapStorage("create indent", assert.AnError)
	suite.remote.On("Save", suite.context, suite.indent).Return(storageErr)
	suite.local.On("Save", suite.context, suite.indent).Return(nil)

	tier, err := suite.store.Save(suite.context, suite.indent)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), TierLocal, tier)
}

func (suite *TieredIndentStoreTestSuite) TestSave_InvalidRecordIsNeverBuffered() {
	invalidErr := common.InvalidArgumentf("indent must reference exactly one of company or delivery partner")
	suite.remote.On("Save", suite.context, suite.indent).Return(invalidErr)

	tier, err := suite.store.Save(suite.context, suite.indent)
	assert.ErrorIs(suite.T(), err, common.ErrInvalidArgument)
	assert.Empty(suite.T(), tier)
	suite.local.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *TieredIndentStoreTestSuite) TestSave_ConflictIsNeverBuffered() {
	conflictErr := common.WrapStorage("create indent", duplicateKeyError())
	suite.remote.On("Save", suite.context, suite.indent).Return(conflictErr)

	tier, err := suite.store.Save(suite.context, suite.indent)
	assert.ErrorIs(suite.T(), err, common.ErrConflict)
	assert.Empty(suite.T(), tier)
	suite.local.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *TieredIndentStoreTestSuite) TestSave_BothTiersDownSurfacesRemoteError() {
	storageErr := common.WrapStorage("create indent", assert.AnError)
	suite.remote.On("Save", suite.context, suite.indent).Return(storageErr)
	suite.local.On("Save", suite.context, suite.indent).Return(assert.AnError)

	tier, err := suite.store.Save(suite.context, suite.indent)
	assert.ErrorIs(suite.T(), err, common.ErrStorage)
	assert.Empty(suite.T(), tier)
}

func (suite *TieredIndentStoreTestSuite) TestListByDate_RemoteHealthy() {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.remote.On("ListByDate", suite.context, date).Return([]*models.IndentRecord{suite.indent}, nil)

	indents, tier, err := suite.store.ListByDate(suite.context, date)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), TierRemote, tier)
	assert.Len(suite.T(), indents, 1)
	suite.local.AssertNotCalled(suite.T(), "ListByDate", mock.Anything, mock.Anything)
}

func (suite *TieredIndentStoreTestSuite) TestListByDate_FallsBackToBuffer() {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	storageErr := common.WrapStorage("list indents by date", assert.AnError)
	suite.remote.On("ListByDate", suite.context, date).Return(nil, storageErr)
	suite.local.On("ListByDate", suite.context, date).Return([]*models.IndentRecord{suite.indent}, nil)

	indents, tier, err := suite.store.ListByDate(suite.context, date)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), TierLocal, tier)
	assert.Len(suite.T(), indents, 1)
}

func (suite *TieredIndentStoreTestSuite) TestListByDate_BothTiersDown() {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	storageErr := common.WrapStorage("list indents by date", assert.AnError)
	suite.remote.On("ListByDate", suite.context, date).Return(nil, storageErr)
	suite.local.On("ListByDate", suite.context, date).Return(nil, assert.AnError)

	indents, tier, err := suite.store.ListByDate(suite.context, date)
	assert.ErrorIs(suite.T(), err, common.ErrStorage)
	assert.Empty(suite.T(), tier)
	assert.Nil(suite.T(), indents)
}

func TestLocalIndentStore_ListByDateFiltersBuffer(t *testing.T) {
	cache := new(MockCacheService)
	store := NewLocalIndentStore(cache)
	ctx := context.Background()

	target := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	match, err := models.NewBulkOrder(uuid.New(), "Hotel Grand", target, 120, "milk")
	assert.NoError(t, err)
	other, err := models.NewDeliveryDispatch(uuid.New(), target.AddDate(0, 0, 1), 45, "milk")
	assert.NoError(t, err)

	cache.On("PeekIndents", ctx).Return([]*models.IndentRecord{match, other}, nil)

	indents, err := store.ListByDate(ctx, target)
	assert.NoError(t, err)
	assert.Len(t, indents, 1)
	assert.Equal(t, match.ID, indents[0].ID)
}
