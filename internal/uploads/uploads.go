// Package uploads stores admin-uploaded images into fixed slots under the
// static image tree and reports the filename to record in the content
// document.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxSizeBytes caps a single uploaded image.
const MaxSizeBytes = 5 << 20

// slot maps an upload slot to its subdirectory under static/img and the
// fixed base filename. Fixed names mean re-uploading a slot replaces the
// previous image instead of accumulating files.
type slot struct {
	subdir string
	base   string
}

var slots = map[string]slot{
	"hero_bg": {"hero", "hero_bg"},

	"about1": {"about", "about1"},
	"about2": {"about", "about2"},
	"about3": {"about", "about3"},

	"gallery1": {"gallery", "gallery1"},
	"gallery2": {"gallery", "gallery2"},
	"gallery3": {"gallery", "gallery3"},
	"gallery4": {"gallery", "gallery4"},
	"gallery5": {"gallery", "gallery5"},
	"gallery6": {"gallery", "gallery6"},

	"leader":           {"leader", "leader"},
	"leader_cert1":     {"certificate", "cert1"},
	"leader_cert2":     {"certificate", "cert2"},
	"leader_cert3":     {"certificate", "cert3"},
	"leader_cert4":     {"certificate", "cert4"},
	"leader_cert5":     {"certificate", "cert5"},
	"leader_cert_main": {"certificate", "cert_big"},

	"remont_1_photo":  {"remont", "remont_1_photo"},
	"remont_1_before": {"remont", "remont_1_before"},
	"remont_1_after":  {"remont", "remont_1_after"},
	"remont_2_photo":  {"remont", "remont_2_photo"},
	"remont_2_before": {"remont", "remont_2_before"},
	"remont_2_after":  {"remont", "remont_2_after"},
	"remont_3_photo":  {"remont", "remont_3_photo"},
	"remont_3_before": {"remont", "remont_3_before"},
	"remont_3_after":  {"remont", "remont_3_after"},
	"remont_4_photo":  {"remont", "remont_4_photo"},
	"remont_4_before": {"remont", "remont_4_before"},
	"remont_4_after":  {"remont", "remont_4_after"},
	"remont_5_photo":  {"remont", "remont_5_photo"},
	"remont_5_before": {"remont", "remont_5_before"},
	"remont_5_after":  {"remont", "remont_5_after"},
	"remont_6_photo":  {"remont", "remont_6_photo"},
	"remont_6_before": {"remont", "remont_6_before"},
	"remont_6_after":  {"remont", "remont_6_after"},

	"news1": {"news", "news1"},
	"news2": {"news", "news2"},
	"news3": {"news", "news3"},
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ContentKey returns the content-document key holding the filename for a
// slot, or false for an unknown slot.
func ContentKey(name string) (string, bool) {
	if _, ok := slots[name]; !ok {
		return "", false
	}
	switch {
	case name == "hero_bg":
		return "hero_image", true
	case name == "leader":
		return "leader_image", true
	case strings.HasPrefix(name, "remont_"):
		// remont_1_photo -> project_remont_1_image
		// remont_1_before -> project_remont_1_before_image
		parts := strings.Split(name, "_")
		if len(parts) == 3 {
			n, suffix := parts[1], parts[2]
			if suffix == "photo" {
				return fmt.Sprintf("project_remont_%s_image", n), true
			}
			return fmt.Sprintf("project_remont_%s_%s_image", n, suffix), true
		}
	}
	return name + "_image", true
}

// Saver writes uploaded images under staticRoot/img/<subdir>/.
type Saver struct {
	staticRoot string
}

// NewSaver creates a saver rooted at the static asset directory.
func NewSaver(staticRoot string) *Saver {
	return &Saver{staticRoot: staticRoot}
}

// Save stores the uploaded file for the given slot and returns the
// filename to record in the content document. originalName is only used
// for its extension; the stored name is fixed per slot.
func (s *Saver) Save(slotName, originalName string, r io.Reader) (string, error) {
	sl, ok := slots[slotName]
	if !ok {
		return "", &Error{Reason: "Неверный слот"}
	}
	if strings.TrimSpace(originalName) == "" {
		return "", &Error{Reason: "Файл не выбран"}
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", &Error{Reason: "Разрешены только JPG и PNG"}
	}
	if ext == ".jpeg" {
		ext = ".jpg"
	}

	filename := sl.base + ext
	destDir := filepath.Join(s.staticRoot, "img", sl.subdir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", &Error{Reason: "Ошибка записи файла"}
	}
	destPath := filepath.Join(destDir, filename)

	tmp, err := os.CreateTemp(destDir, ".upload-*")
	if err != nil {
		return "", &Error{Reason: "Ошибка записи файла"}
	}
	tmpName := tmp.Name()

	// Copy one byte past the cap so oversized files are detected without
	// buffering them in memory.
	n, err := io.Copy(tmp, io.LimitReader(r, MaxSizeBytes+1))
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &Error{Reason: "Ошибка записи файла"}
	}
	if n > MaxSizeBytes {
		tmp.Close()
		os.Remove(tmpName)
		return "", &Error{Reason: "Размер не более 5 МБ"}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &Error{Reason: "Ошибка записи файла"}
	}
	if err := os.Rename(tmpName, destPath); err != nil {
		os.Remove(tmpName)
		return "", &Error{Reason: "Ошибка записи файла"}
	}
	return filename, nil
}

// Error carries a user-facing upload rejection reason.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}
