package display

import (
	"strings"

	"github.com/rmccall/shelftrack-golang/internal/models"
)

// SortByTitle reorders items in place by title, case-insensitively
// ascending, with a recursive merge sort. The merge takes from the
// left half on ties, so elements with equal titles keep their input
// relative order. O(n log n) time, O(n) auxiliary space, deterministic.
func SortByTitle(items []models.InventoryItem) {
	if len(items) > 1 {
		mergeSort(items, 0, len(items)-1)
	}
}

func mergeSort(items []models.InventoryItem, left, right int) {
	if left < right {
		mid := left + (right-left)/2
		mergeSort(items, left, mid)
		mergeSort(items, mid+1, right)
		merge(items, left, mid, right)
	}
}

func merge(items []models.InventoryItem, left, mid, right int) {
	leftHalf := make([]models.InventoryItem, mid-left+1)
	rightHalf := make([]models.InventoryItem, right-mid)
	copy(leftHalf, items[left:mid+1])
	copy(rightHalf, items[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(leftHalf) && j < len(rightHalf) {
		// <= keeps the left half's element on ties (stability).
		if compareTitles(leftHalf[i].Title, rightHalf[j].Title) <= 0 {
			items[k] = leftHalf[i]
			i++
		} else {
			items[k] = rightHalf[j]
			j++
		}
		k++
	}

	for i < len(leftHalf) {
		items[k] = leftHalf[i]
		i++
		k++
	}
	for j < len(rightHalf) {
		items[k] = rightHalf[j]
		j++
		k++
	}
}

func compareTitles(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
