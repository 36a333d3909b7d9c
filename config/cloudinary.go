package config

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary trả về nil khi CLOUDINARY_URL không được cấu hình
func ConnectCloudinary(url string) (*cloudinary.Cloudinary, error) {
	if url == "" {
		log.Println("CLOUDINARY_URL trống, bỏ qua upload bản sao lưu")
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	Cloudinary = cld
	return cld, nil
}
