package models

import (
	"math"
	"strconv"

	"orionhotel/constants"
)

// SystemSetting là một dòng key/value trong bảng system_settings
type SystemSetting struct {
	SettingKey   string `json:"key" gorm:"primaryKey;size:100"`
	SettingValue string `json:"value"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}

const (
	SettingHotelName         = "hotel_name"
	SettingHotelAddress      = "hotel_address"
	SettingHotelPhone        = "hotel_phone"
	SettingHotelEmail        = "hotel_email"
	SettingCurrency          = "currency"
	SettingCheckoutTime      = "checkout_time"
	SettingTaxRate           = "tax_rate"
	SettingServiceCharge     = "service_charge"
	SettingPasswordMinLength = "password_min_length"
	SettingSessionTimeout    = "session_timeout"
	SettingNotifyLowStock    = "notify_low_stock"
	SettingNotifyMaintenance = "notify_maintenance"
	settingRoomPricePrefix   = "room_price."
)

// RoomPriceKey trả về key giá phòng theo loại, ví dụ room_price.Suite
func RoomPriceKey(roomType string) string {
	return settingRoomPricePrefix + roomType
}

// SystemSettings là cấu hình đã parse. TaxRate và ServiceChargeRate là tỉ lệ (0.125),
// khi lưu xuống bảng thì ghi dưới dạng phần trăm (12.5).
type SystemSettings struct {
	HotelName             string             `json:"hotelName"`
	HotelAddress          string             `json:"hotelAddress"`
	HotelPhone            string             `json:"hotelPhone"`
	HotelEmail            string             `json:"hotelEmail"`
	Currency              string             `json:"currency"`
	CheckoutTime          string             `json:"checkoutTime"`
	TaxRate               float64            `json:"taxRate"`
	ServiceChargeRate     float64            `json:"serviceChargeRate"`
	RoomPrices            map[string]float64 `json:"roomPrices"`
	PasswordMinLength     int                `json:"passwordMinLength"`
	SessionTimeoutMinutes int                `json:"sessionTimeoutMinutes"`
	NotifyLowStock        bool               `json:"notifyLowStock"`
	NotifyMaintenance     bool               `json:"notifyMaintenance"`
}

func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		HotelName:         "Orion Hotel",
		Currency:          "USD",
		CheckoutTime:      "12:00",
		TaxRate:           0.10,
		ServiceChargeRate: 0.05,
		RoomPrices: map[string]float64{
			constants.RoomTypeSingle: 100,
			constants.RoomTypeDouble: 150,
			constants.RoomTypeSuite:  300,
		},
		PasswordMinLength:     8,
		SessionTimeoutMinutes: 30,
		NotifyLowStock:        true,
		NotifyMaintenance:     true,
	}
}

// RoomPrice trả về giá cấu hình theo loại phòng
func (s *SystemSettings) RoomPrice(roomType string) (float64, bool) {
	p, ok := s.RoomPrices[roomType]
	if !ok || p <= 0 {
		return 0, false
	}
	return p, true
}

// SettingsFromMap đè các giá trị có trong map lên cấu hình mặc định.
// Giá trị không parse được thì giữ mặc định.
func SettingsFromMap(values map[string]string) SystemSettings {
	s := DefaultSystemSettings()
	for k, v := range values {
		switch k {
		case SettingHotelName:
			s.HotelName = v
		case SettingHotelAddress:
			s.HotelAddress = v
		case SettingHotelPhone:
			s.HotelPhone = v
		case SettingHotelEmail:
			s.HotelEmail = v
		case SettingCurrency:
			s.Currency = v
		case SettingCheckoutTime:
			s.CheckoutTime = v
		case SettingTaxRate:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				s.TaxRate = fromPercent(f)
			}
		case SettingServiceCharge:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				s.ServiceChargeRate = fromPercent(f)
			}
		case SettingPasswordMinLength:
			if n, err := strconv.Atoi(v); err == nil {
				s.PasswordMinLength = n
			}
		case SettingSessionTimeout:
			if n, err := strconv.Atoi(v); err == nil {
				s.SessionTimeoutMinutes = n
			}
		case SettingNotifyLowStock:
			if b, err := strconv.ParseBool(v); err == nil {
				s.NotifyLowStock = b
			}
		case SettingNotifyMaintenance:
			if b, err := strconv.ParseBool(v); err == nil {
				s.NotifyMaintenance = b
			}
		default:
			if len(k) > len(settingRoomPricePrefix) && k[:len(settingRoomPricePrefix)] == settingRoomPricePrefix {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					s.RoomPrices[k[len(settingRoomPricePrefix):]] = f
				}
			}
		}
	}
	return s
}

// ToMap là chiều ngược của SettingsFromMap
func (s *SystemSettings) ToMap() map[string]string {
	m := map[string]string{
		SettingHotelName:         s.HotelName,
		SettingHotelAddress:      s.HotelAddress,
		SettingHotelPhone:        s.HotelPhone,
		SettingHotelEmail:        s.HotelEmail,
		SettingCurrency:          s.Currency,
		SettingCheckoutTime:      s.CheckoutTime,
		SettingTaxRate:           formatFloat(toPercent(s.TaxRate)),
		SettingServiceCharge:     formatFloat(toPercent(s.ServiceChargeRate)),
		SettingPasswordMinLength: strconv.Itoa(s.PasswordMinLength),
		SettingSessionTimeout:    strconv.Itoa(s.SessionTimeoutMinutes),
		SettingNotifyLowStock:    strconv.FormatBool(s.NotifyLowStock),
		SettingNotifyMaintenance: strconv.FormatBool(s.NotifyMaintenance),
	}
	for roomType, price := range s.RoomPrices {
		m[RoomPriceKey(roomType)] = formatFloat(price)
	}
	return m
}

func fromPercent(v float64) float64 {
	return math.Round(v*1e4) / 1e6
}

func toPercent(v float64) float64 {
	return math.Round(v*1e6) / 1e4
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
