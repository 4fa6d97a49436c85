package validation

import "slices"

// ThumbnailSizes ширины миниатюр, которые производит внешний воркер
var ThumbnailSizes = []string{"500", "250", "100"}

// IsThumbnailSize проверяет, что size это одна из известных ширин миниатюр.
// Пустая строка означает оригинал и сюда не передается.
func IsThumbnailSize(size string) bool {
	return slices.Contains(ThumbnailSizes, size)
}
