// Package orgsvc - dựng cây đơn vị tổ chức từ danh sách phẳng.
package orgsvc

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "hr_center/internal/api/organization/models"
	"hr_center/internal/common"
)

// BuildTree dựng cây tổ chức từ danh sách phẳng, bắt đầu từ các đơn vị con
// trực tiếp của parentID (zero ObjectID = các đơn vị gốc).
//
// Thuật toán lặp với stack tường minh (không đệ quy) để dữ liệu xấu không làm
// tràn stack. Con của mỗi node giữ nguyên thứ tự xuất hiện trong danh sách đầu vào.
// Nếu dữ liệu parentId tạo thành chu trình, trả về common.ErrCycleDetected.
func BuildTree(units []models.OrgUnit, parentID primitive.ObjectID) ([]*models.OrgUnitNode, error) {
	// Index con theo parentId, giữ thứ tự đầu vào
	childrenByParent := make(map[primitive.ObjectID][]models.OrgUnit, len(units))
	for _, u := range units {
		childrenByParent[u.ParentID] = append(childrenByParent[u.ParentID], u)
	}

	roots := childrenByParent[parentID]
	result := make([]*models.OrgUnitNode, 0, len(roots))
	visited := make(map[primitive.ObjectID]bool, len(units))

	type stackItem struct {
		node *models.OrgUnitNode
	}
	stack := make([]stackItem, 0, len(units))

	for _, root := range roots {
		if visited[root.ID] {
			return nil, common.ErrCycleDetected
		}
		visited[root.ID] = true
		node := &models.OrgUnitNode{Unit: root, Children: []*models.OrgUnitNode{}}
		result = append(result, node)
		stack = append(stack, stackItem{node: node})
	}

	for len(stack) > 0 {
		// Pop
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range childrenByParent[item.node.Unit.ID] {
			if visited[child.ID] {
				// Đơn vị xuất hiện lần thứ hai trong quá trình duyệt → dữ liệu có chu trình
				return nil, common.ErrCycleDetected
			}
			visited[child.ID] = true
			childNode := &models.OrgUnitNode{Unit: child, Children: []*models.OrgUnitNode{}}
			item.node.Children = append(item.node.Children, childNode)
			stack = append(stack, stackItem{node: childNode})
		}
	}

	return result, nil
}
