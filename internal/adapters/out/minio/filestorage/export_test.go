package filestorage

func (s *Storage) ObjectKey(fileURL string) (string, bool) {
	return s.objectKey(fileURL)
}
