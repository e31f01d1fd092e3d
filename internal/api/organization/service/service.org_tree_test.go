// Package orgsvc - Test dựng cây đơn vị tổ chức từ danh sách phẳng.
package orgsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "hr_center/internal/api/organization/models"
	"hr_center/internal/common"
)

func unit(id, parent primitive.ObjectID, name string) models.OrgUnit {
	return models.OrgUnit{ID: id, ParentID: parent, Name: name}
}

func TestBuildTree_FlatToNested(t *testing.T) {
	root := primitive.NewObjectID()
	childA := primitive.NewObjectID()
	childB := primitive.NewObjectID()
	grandchild := primitive.NewObjectID()

	units := []models.OrgUnit{
		unit(root, primitive.NilObjectID, "Công ty"),
		unit(childA, root, "Phòng Kinh doanh"),
		unit(childB, root, "Phòng Kỹ thuật"),
		unit(grandchild, childA, "Nhóm Bán hàng"),
	}

	tree, err := BuildTree(units, primitive.NilObjectID)
	require.NoError(t, err)
	require.Len(t, tree, 1)

	assert.Equal(t, "Công ty", tree[0].Unit.Name)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "Phòng Kinh doanh", tree[0].Children[0].Unit.Name, "thứ tự con phải theo thứ tự đầu vào")
	assert.Equal(t, "Phòng Kỹ thuật", tree[0].Children[1].Unit.Name)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "Nhóm Bán hàng", tree[0].Children[0].Children[0].Unit.Name)
}

func TestBuildTree_SubtreeFromParent(t *testing.T) {
	root := primitive.NewObjectID()
	child := primitive.NewObjectID()
	grandchild := primitive.NewObjectID()

	units := []models.OrgUnit{
		unit(root, primitive.NilObjectID, "Công ty"),
		unit(child, root, "Phòng Kỹ thuật"),
		unit(grandchild, child, "Nhóm Backend"),
	}

	tree, err := BuildTree(units, root)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Phòng Kỹ thuật", tree[0].Unit.Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Nhóm Backend", tree[0].Children[0].Unit.Name)
}

func TestBuildTree_CycleDetected(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	root := primitive.NewObjectID()

	// a và b trỏ vào nhau tạo chu trình, root hợp lệ
	units := []models.OrgUnit{
		unit(root, primitive.NilObjectID, "Công ty"),
		unit(a, b, "A"),
		unit(b, a, "B"),
	}

	// Chu trình tách rời gốc thì không đi đến được, không lỗi
	tree, err := BuildTree(units, primitive.NilObjectID)
	require.NoError(t, err)
	require.Len(t, tree, 1)

	// Chu trình đi đến được từ điểm bắt đầu phải bị phát hiện
	_, err = BuildTree(units, a)
	assert.ErrorIs(t, err, common.ErrCycleDetected)
}

func TestBuildTree_EmptyInput(t *testing.T) {
	tree, err := BuildTree(nil, primitive.NilObjectID)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestBuildTree_ChildrenAlwaysInitialized(t *testing.T) {
	leaf := primitive.NewObjectID()
	units := []models.OrgUnit{unit(leaf, primitive.NilObjectID, "Lá")}

	tree, err := BuildTree(units, primitive.NilObjectID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.NotNil(t, tree[0].Children, "node lá phải có slice con rỗng, không phải nil")
}
