package image

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// SupportedImageExtensions returns the file extensions considered when
// scanning a directory.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

func isImageFile(path string) bool {
	return slices.Contains(SupportedImageExtensions(), strings.ToLower(filepath.Ext(path)))
}

// ScanDirectoryForImages returns the image files directly inside dirPath,
// sorted by name. Symlinks are followed; subdirectories are not.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// Stat the target so symlinked files count and broken links are skipped.
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}
	return imageFiles, nil
}

// SelectRandomImage picks one path with crypto/rand.
func SelectRandomImage(imagePaths []string) (string, error) {
	if len(imagePaths) == 0 {
		return "", fmt.Errorf("image path list is empty")
	}
	i, err := rand.Int(rand.Reader, big.NewInt(int64(len(imagePaths))))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return imagePaths[i.Int64()], nil
}

// ResolveImagePath returns path unchanged when it is a file. A directory is
// scanned and one of its images is chosen at random, which suits folders of
// rotating wallpapers.
func ResolveImagePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to access path: %w", ErrImageDecode, err)
	}
	if !info.IsDir() {
		return path, nil
	}

	imageFiles, err := ScanDirectoryForImages(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	return SelectRandomImage(imageFiles)
}
