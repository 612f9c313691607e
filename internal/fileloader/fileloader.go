package fileloader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoMudEngine/textkit/internal/applog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type FileType uint8
type SaveOption uint8

type LoadableSimple interface {
	Validate() error // General validation (or none)
}

type Loadable[K comparable] interface {
	Id() K // Must be unique across all files loaded together
	LoadableSimple
}

const (
	// File types to load
	FileTypeYaml FileType = iota
	FileTypeJson
)

const (
	// Save options
	SaveCareful SaveOption = iota // Write a temp file and rename vs. just overwriting
)

func fileTypeOf(path string) (FileType, bool) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FileTypeYaml, true
	case strings.HasSuffix(lower, ".json"):
		return FileTypeJson, true
	}
	return 0, false
}

// LoadFlatFile reads a single yaml or json file into T and validates it.
func LoadFlatFile[T LoadableSimple](path string) (T, error) {

	var loaded T

	path = filepath.FromSlash(path)

	fileInfo, err := os.Stat(path)
	if err != nil {
		return loaded, errors.Wrap(err, `filepath: `+path)
	}

	if fileInfo.IsDir() {
		return loaded, errors.New(`filepath: ` + path + ` is a directory`)
	}

	fType, ok := fileTypeOf(path)
	if !ok {
		return loaded, errors.New(`invalid file type: ` + path)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return loaded, errors.Wrap(err, `filepath: `+path)
	}

	if fType == FileTypeYaml {
		err = yaml.Unmarshal(bytes, &loaded)
	} else {
		err = json.Unmarshal(bytes, &loaded)
	}
	if err != nil {
		return loaded, errors.Wrap(err, `filepath: `+path)
	}

	if err := loaded.Validate(); err != nil {
		return loaded, errors.Wrap(err, `filepath: `+path)
	}

	return loaded, nil
}

// LoadAllFlatFiles walks basePath and loads every yaml/json file into a map keyed by Id().
// Duplicate ids are an error. Files of other types are skipped.
func LoadAllFlatFiles[K comparable, T Loadable[K]](basePath string, fileTypes ...FileType) (map[K]T, error) {
	loadedData := make(map[K]T)
	seenIds := make(map[K]string)
	basePath = filepath.FromSlash(basePath)

	include := map[FileType]bool{FileTypeYaml: true, FileTypeJson: true}
	if len(fileTypes) > 0 {
		include = map[FileType]bool{}
		for _, fType := range fileTypes {
			include[fType] = true
		}
	}

	err := filepath.Walk(basePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		fType, ok := fileTypeOf(path)
		if !ok || !include[fType] {
			applog.Debug("LoadAllFlatFiles skipping file", "path", path)
			return nil
		}

		loaded, loadErr := LoadFlatFile[T](path)
		if loadErr != nil {
			return errors.Wrap(loadErr, fmt.Sprintf("failed to load flat file %s", path))
		}

		id := loaded.Id()
		if existingPath, ok := seenIds[id]; ok {
			return errors.New(fmt.Sprintf("duplicate ID %v found in file %s and %s", id, existingPath, path))
		}
		seenIds[id] = path
		loadedData[id] = loaded
		return nil
	})

	if err != nil {
		return nil, err
	}
	return loadedData, nil
}

// SaveFlatFile writes dataUnit to path as yaml or json depending on the extension,
// creating parent directories as needed.
func SaveFlatFile[T any](path string, dataUnit T, saveOptions ...SaveOption) error {
	path = filepath.FromSlash(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create directory for saving file: "+dir)
	}

	var bytes []byte
	var err error

	fType, ok := fileTypeOf(path)
	if !ok {
		return errors.New("unsupported file type for saving: " + path + " (must be .yaml or .json)")
	}
	if fType == FileTypeYaml {
		bytes, err = yaml.Marshal(&dataUnit)
	} else {
		bytes, err = json.MarshalIndent(&dataUnit, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal data for file: "+path)
	}

	careful := false
	for _, opt := range saveOptions {
		if opt == SaveCareful {
			careful = true
		}
	}

	if !careful {
		if err := os.WriteFile(path, bytes, 0644); err != nil {
			return errors.Wrap(err, "failed to write file (overwrite): "+path)
		}
		return nil
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0644); err != nil {
		return errors.Wrap(err, "failed to write to temporary file: "+tempPath)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Wrap(err, "failed to rename temporary file to target file: "+path)
	}

	return nil
}

// CopyFileContents copies the contents of the file named src to the file named
// by dst. The file will be created if it does not already exist. If the
// destination file exists, all its contents will be replaced by the contents
// of the source file.
func CopyFileContents(src, dst string) (err error) {
	in, err := os.Open(filepath.FromSlash(src))
	if err != nil {
		return
	}
	defer in.Close()
	out, err := os.Create(filepath.FromSlash(dst))
	if err != nil {
		return
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = e
		}
	}()
	if _, err = io.Copy(out, in); err != nil {
		return
	}
	return out.Sync()
}
