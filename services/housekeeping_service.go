package services

import (
	"context"
	"fmt"

	"orionhotel/constants"
	"orionhotel/errors"
	"orionhotel/models"
	"orionhotel/repository"
	"orionhotel/services/logger"
)

const (
	staffUnassigned = "Unassigned"
	staffUnknown    = "Unknown"
)

// TaskWithStaff là công việc dọn phòng kèm tên nhân viên được giao
type TaskWithStaff struct {
	models.HousekeepingTask
	AssignedStaffName string `json:"assignedStaffName"`
}

type MaintenanceWithTechnician struct {
	models.MaintenanceRequest
	TechnicianName string `json:"technicianName"`
}

type HousekeepingService struct {
	repo     repository.HousekeepingRepository
	staff    repository.StaffRepository
	rooms    *RoomService
	settings *SettingsService
	notifier Notifier
	logger   logger.Logger
	clock    Clock
}

type HousekeepingServiceOptions struct {
	Repo     repository.HousekeepingRepository
	Staff    repository.StaffRepository
	Rooms    *RoomService
	Settings *SettingsService
	Notifier Notifier
	Logger   logger.Logger
	Clock    Clock
}

func NewHousekeepingService(opts HousekeepingServiceOptions) *HousekeepingService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &HousekeepingService{
		repo:     opts.Repo,
		staff:    opts.Staff,
		rooms:    opts.Rooms,
		settings: opts.Settings,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		clock:    opts.Clock,
	}
}

func (s *HousekeepingService) ensureStaff(ctx context.Context, staffID *uint) error {
	if staffID == nil {
		return nil
	}
	if _, err := s.staff.FindByID(ctx, *staffID); err != nil {
		return wrapRepoError(err, errors.ErrStaffNotFound, fmt.Sprintf("nhân viên %d", *staffID))
	}
	return nil
}

func (s *HousekeepingService) CreateTask(ctx context.Context, roomNumber int, taskType string, staffID *uint) (*models.HousekeepingTask, error) {
	if !constants.IsOneOf(taskType, constants.TaskTypes) {
		return nil, validationError(fmt.Sprintf("Loại công việc không hợp lệ: %s", taskType))
	}
	if _, err := s.rooms.GetRoom(ctx, roomNumber); err != nil {
		return nil, err
	}
	if err := s.ensureStaff(ctx, staffID); err != nil {
		return nil, err
	}
	task := &models.HousekeepingTask{
		RoomNumber:      roomNumber,
		TaskType:        taskType,
		Status:          constants.TaskStatusPending,
		AssignedStaffID: staffID,
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, wrapRepoError(err, nil, "công việc")
	}
	s.logger.Info("Tạo công việc %s cho phòng %d", taskType, roomNumber)
	return task, nil
}

// staffNames tra tên nhân viên, nhớ kết quả trong một lần liệt kê
type staffNames struct {
	ctx   context.Context
	repo  repository.StaffRepository
	cache map[uint]string
}

func (n *staffNames) lookup(id *uint) string {
	if id == nil {
		return staffUnassigned
	}
	if name, ok := n.cache[*id]; ok {
		return name
	}
	name := staffUnknown
	if st, err := n.repo.FindByID(n.ctx, *id); err == nil {
		name = st.FullName
	}
	n.cache[*id] = name
	return name
}

func (s *HousekeepingService) ListTasks(ctx context.Context, status string) ([]TaskWithStaff, error) {
	if status != "" && !constants.IsOneOf(status, constants.TaskStatuses) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("Trạng thái công việc không hợp lệ: %s", status), errors.ErrInvalidInput)
	}
	tasks, err := s.repo.ListTasks(ctx, status)
	if err != nil {
		return nil, wrapRepoError(err, nil, "công việc")
	}
	names := &staffNames{ctx: ctx, repo: s.staff, cache: map[uint]string{}}
	out := make([]TaskWithStaff, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskWithStaff{HousekeepingTask: t, AssignedStaffName: names.lookup(t.AssignedStaffID)})
	}
	return out, nil
}

func (s *HousekeepingService) findTask(ctx context.Context, id uint) (*models.HousekeepingTask, error) {
	task, err := s.repo.FindTask(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrTaskNotFound, fmt.Sprintf("công việc %d", id))
	}
	return task, nil
}

func (s *HousekeepingService) AssignTask(ctx context.Context, taskID, staffID uint) (*models.HousekeepingTask, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureStaff(ctx, &staffID); err != nil {
		return nil, err
	}
	task.AssignedStaffID = &staffID
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, wrapRepoError(err, errors.ErrTaskNotFound, fmt.Sprintf("công việc %d", taskID))
	}
	return task, nil
}

// UpdateTaskStatus: hoàn tất công việc thì phòng trở lại AVAILABLE
func (s *HousekeepingService) UpdateTaskStatus(ctx context.Context, taskID uint, status string) (*models.HousekeepingTask, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	task.Status = status
	if err := task.ValidateStatus(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), errors.ErrInvalidInput)
	}
	if status == constants.TaskStatusCompleted {
		now := s.clock.now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, wrapRepoError(err, errors.ErrTaskNotFound, fmt.Sprintf("công việc %d", taskID))
	}
	if status == constants.TaskStatusCompleted {
		if err := s.rooms.MarkCleaned(ctx, task.RoomNumber); err != nil {
			return nil, err
		}
	}
	s.logger.Info("Công việc %d -> %s", taskID, status)
	return task, nil
}

func (s *HousekeepingService) CreateMaintenanceRequest(ctx context.Context, roomNumber int, issueType, description, priority string) (*models.MaintenanceRequest, error) {
	if !constants.IsOneOf(issueType, constants.IssueTypes) {
		return nil, validationError(fmt.Sprintf("Loại sự cố không hợp lệ: %s", issueType))
	}
	if priority == "" {
		priority = constants.PriorityMedium
	}
	if !constants.IsOneOf(priority, constants.Priorities) {
		return nil, validationError(fmt.Sprintf("Mức ưu tiên không hợp lệ: %s", priority))
	}
	if _, err := s.rooms.GetRoom(ctx, roomNumber); err != nil {
		return nil, err
	}

	req := &models.MaintenanceRequest{
		RoomNumber:  roomNumber,
		IssueType:   issueType,
		Description: description,
		Priority:    priority,
		Status:      constants.MaintenanceStatusOpen,
	}
	if err := s.repo.CreateRequest(ctx, req); err != nil {
		return nil, wrapRepoError(err, nil, "yêu cầu bảo trì")
	}
	if err := s.rooms.MarkMaintenance(ctx, roomNumber); err != nil {
		return nil, err
	}
	s.notifyMaintenance(ctx, fmt.Sprintf("Maintenance Needed: Room %d (%s)", roomNumber, issueType))
	return req, nil
}

func (s *HousekeepingService) notifyMaintenance(ctx context.Context, message string) {
	if s.notifier == nil {
		return
	}
	if s.settings != nil {
		settings, err := s.settings.Get(ctx)
		if err == nil && !settings.NotifyMaintenance {
			return
		}
	}
	if _, err := s.notifier.Send(ctx, message, constants.RoleManager); err != nil {
		s.logger.Error("❌ Lỗi gửi thông báo bảo trì: %v", err)
	}
}

func (s *HousekeepingService) findRequest(ctx context.Context, id uint) (*models.MaintenanceRequest, error) {
	req, err := s.repo.FindRequest(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, errors.ErrRequestNotFound, fmt.Sprintf("yêu cầu bảo trì %d", id))
	}
	return req, nil
}

func (s *HousekeepingService) AssignTechnician(ctx context.Context, reqID, staffID uint) (*models.MaintenanceRequest, error) {
	req, err := s.findRequest(ctx, reqID)
	if err != nil {
		return nil, err
	}
	if req.Status == constants.MaintenanceStatusFixed {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Yêu cầu bảo trì đã hoàn tất", errors.ErrInvalidInput)
	}
	if err := s.ensureStaff(ctx, &staffID); err != nil {
		return nil, err
	}
	req.AssignedTechnicianID = &staffID
	req.Status = constants.MaintenanceStatusInProgress
	if err := s.repo.UpdateRequest(ctx, req); err != nil {
		return nil, wrapRepoError(err, errors.ErrRequestNotFound, fmt.Sprintf("yêu cầu bảo trì %d", reqID))
	}
	return req, nil
}

// CompleteMaintenance: sửa xong thì phòng chuyển DIRTY và chờ dọn
func (s *HousekeepingService) CompleteMaintenance(ctx context.Context, reqID uint) (*models.MaintenanceRequest, error) {
	req, err := s.findRequest(ctx, reqID)
	if err != nil {
		return nil, err
	}
	if req.Status == constants.MaintenanceStatusFixed {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Yêu cầu bảo trì đã hoàn tất", errors.ErrInvalidInput)
	}
	now := s.clock.now()
	req.Status = constants.MaintenanceStatusFixed
	req.ResolvedAt = &now
	if err := s.repo.UpdateRequest(ctx, req); err != nil {
		return nil, wrapRepoError(err, errors.ErrRequestNotFound, fmt.Sprintf("yêu cầu bảo trì %d", reqID))
	}
	if err := s.rooms.CheckoutRoom(ctx, req.RoomNumber); err != nil {
		return nil, err
	}
	s.logger.Info("✅ Đã sửa xong phòng %d (yêu cầu %d)", req.RoomNumber, reqID)
	return req, nil
}

func (s *HousekeepingService) ListMaintenance(ctx context.Context, status string) ([]MaintenanceWithTechnician, error) {
	if status != "" && !constants.IsOneOf(status, constants.MaintenanceStatuses) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, fmt.Sprintf("Trạng thái bảo trì không hợp lệ: %s", status), errors.ErrInvalidInput)
	}
	reqs, err := s.repo.ListRequests(ctx, status)
	if err != nil {
		return nil, wrapRepoError(err, nil, "yêu cầu bảo trì")
	}
	names := &staffNames{ctx: ctx, repo: s.staff, cache: map[uint]string{}}
	out := make([]MaintenanceWithTechnician, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, MaintenanceWithTechnician{MaintenanceRequest: r, TechnicianName: names.lookup(r.AssignedTechnicianID)})
	}
	return out, nil
}
