package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"orionhotel/errors"
	"orionhotel/repository"
	"orionhotel/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zip"
)

const backupFileLayout = "db_backup_20060102_150405.zip"

// BackupUploader đẩy file sao lưu lên nơi lưu trữ ngoài, trả về URL
type BackupUploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld, folder: "backups"}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, path string) (string, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	resp, err := u.cld.Upload.Upload(ctx, path, uploader.UploadParams{
		Folder:       u.folder,
		PublicID:     name,
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

type BackupInfo struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	SizeHuman string    `json:"sizeHuman"`
	CreatedAt time.Time `json:"createdAt"`
	RemoteURL string    `json:"remoteUrl,omitempty"`
}

type BackupService struct {
	dumper   repository.TableDumper
	dir      string
	uploader BackupUploader
	logger   logger.Logger
	clock    Clock
}

type BackupServiceOptions struct {
	Dumper   repository.TableDumper
	Dir      string
	Uploader BackupUploader
	Logger   logger.Logger
	Clock    Clock
}

func NewBackupService(opts BackupServiceOptions) *BackupService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Dir == "" {
		opts.Dir = filepath.Join("backups", "daily")
	}
	return &BackupService{
		dumper:   opts.Dumper,
		dir:      opts.Dir,
		uploader: opts.Uploader,
		logger:   opts.Logger,
		clock:    opts.Clock,
	}
}

// CreateBackup ghi mỗi bảng thành một file JSON trong một file zip
func (s *BackupService) CreateBackup(ctx context.Context) (*BackupInfo, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Không tạo được thư mục sao lưu", err)
	}
	now := s.clock.now()
	path := filepath.Join(s.dir, now.Format(backupFileLayout))

	if err := s.writeArchive(ctx, path); err != nil {
		os.Remove(path)
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Không đọc được file sao lưu", err)
	}
	info := backupInfo(path, stat)

	if s.uploader != nil {
		url, err := s.uploader.Upload(ctx, path)
		if err != nil {
			// file cục bộ vẫn dùng được, chỉ log lỗi upload
			s.logger.Error("❌ Lỗi upload file sao lưu %s: %v", info.Name, err)
		} else {
			info.RemoteURL = url
		}
	}
	s.logger.Info("✅ Đã sao lưu %s (%s)", info.Name, info.SizeHuman)
	return &info, nil
}

func (s *BackupService) writeArchive(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidOperation, "Không tạo được file sao lưu", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, table := range s.dumper.Tables() {
		rows, err := s.dumper.Dump(ctx, table)
		if err != nil {
			zw.Close()
			return wrapRepoError(err, nil, "bảng "+table)
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			zw.Close()
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Không mã hóa được bảng "+table, err)
		}
		w, err := zw.Create(table + ".json")
		if err != nil {
			zw.Close()
			return errors.NewAppError(errors.ErrCodeInvalidOperation, "Không ghi được file sao lưu", err)
		}
		if _, err := w.Write(data); err != nil {
			zw.Close()
			return errors.NewAppError(errors.ErrCodeInvalidOperation, "Không ghi được file sao lưu", err)
		}
	}
	if err := zw.Close(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidOperation, "Không ghi được file sao lưu", err)
	}
	return nil
}

// History liệt kê các file sao lưu, mới nhất trước
func (s *BackupService) History() ([]BackupInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Không đọc được thư mục sao lưu", err)
	}
	out := []BackupInfo{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".zip" {
			continue
		}
		stat, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, backupInfo(filepath.Join(s.dir, e.Name()), stat))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

// Restore không hỗ trợ khi server đang chạy
func (s *BackupService) Restore(name string) error {
	return errors.NewAppError(errors.ErrCodeInvalidOperation,
		fmt.Sprintf("Không thể khôi phục %s khi hệ thống đang chạy, hãy khôi phục thủ công khi bảo trì", name),
		errors.ErrRestoreUnsupported)
}

func backupInfo(path string, stat os.FileInfo) BackupInfo {
	return BackupInfo{
		Name:      stat.Name(),
		Path:      path,
		Size:      stat.Size(),
		SizeHuman: humanize.Bytes(uint64(stat.Size())),
		CreatedAt: stat.ModTime(),
	}
}
