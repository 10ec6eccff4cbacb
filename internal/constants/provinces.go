package constants

import "strings"

// IndonesianProvinces 印尼省份固定枚举（38 项），物流费率校验与下拉选择共用
var IndonesianProvinces = []string{
	"Aceh",
	"Sumatera Utara",
	"Sumatera Barat",
	"Riau",
	"Kepulauan Riau",
	"Jambi",
	"Sumatera Selatan",
	"Bangka Belitung",
	"Bengkulu",
	"Lampung",
	"DKI Jakarta",
	"Jawa Barat",
	"Jawa Tengah",
	"DI Yogyakarta",
	"Jawa Timur",
	"Banten",
	"Bali",
	"Nusa Tenggara Barat",
	"Nusa Tenggara Timur",
	"Kalimantan Barat",
	"Kalimantan Tengah",
	"Kalimantan Selatan",
	"Kalimantan Timur",
	"Kalimantan Utara",
	"Sulawesi Utara",
	"Sulawesi Tengah",
	"Sulawesi Selatan",
	"Sulawesi Tenggara",
	"Gorontalo",
	"Sulawesi Barat",
	"Maluku",
	"Maluku Utara",
	"Papua",
	"Papua Barat",
	"Papua Selatan",
	"Papua Tengah",
	"Papua Pegunungan",
	"Papua Barat Daya",
}

// IsIndonesianProvince 判断名称是否为合法省份（大小写不敏感）
func IsIndonesianProvince(name string) bool {
	trimmed := strings.TrimSpace(name)
	for _, province := range IndonesianProvinces {
		if strings.EqualFold(province, trimmed) {
			return true
		}
	}
	return false
}

// ProvinceSlug 由省份名称派生确定性 ID：小写、空格替换为连字符
func ProvinceSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
