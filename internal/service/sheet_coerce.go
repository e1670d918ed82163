package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ── 单元格类型转换（coercion）原语 ──────────────────────────
//
// 全部是全函数：任何输入都不会越过自身边界抛错，
// 解析失败一律退化为"无值"（nil / ok=false），逐格隔离。
// ─────────────────────────────────────────────────────────────

const plantTimezone = "Asia/Kolkata" // 工厂所在时区

// datePrefix 车间模板日期单元格的固定前缀
const datePrefix = "DATE:-"

// DisplayDateTimeLayout 关键零件到货时间的显示格式（日/月/年 时:分）
const DisplayDateTimeLayout = "02/01/2006 15:04"

// dateLayouts 日期解析格式，按优先级排列（非补零布局同时接受补零输入）
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-1-2",
	"1/2/2006",
}

// dateTimeLayouts 日期时刻解析格式
var dateTimeLayouts = []string{
	"2/1/2006 15:04",
	"2006-1-2 15:04",
	"2-1-2006 15:04",
}

var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// plantLocation 工厂时区；tzdata 缺失时退化为固定偏移 IST(+05:30)
func plantLocation() *time.Location {
	loc, err := time.LoadLocation(plantTimezone)
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// coerceString 单元格 → 去除首尾空白的字符串；空单元格 → ""
func coerceString(c Cell) string {
	switch c.Kind {
	case CellString:
		return strings.TrimSpace(c.Str)
	case CellNumber:
		return strings.TrimSpace(formatNumber(c.Num))
	case CellTime:
		return c.Time.Format("15:04")
	case CellDate:
		return c.Time.Format("2006-01-02")
	case CellDateTime:
		return c.Time.Format("2006-01-02 15:04")
	default:
		return ""
	}
}

// coerceNumber 单元格 → 数值；整值浮点折叠为整数语义由调用方处理
// 文本先剥离千分位逗号再按浮点解析；解析失败 → ok=false
func coerceNumber(c Cell) (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Num, true
	case CellString:
		s := strings.ReplaceAll(strings.TrimSpace(c.Str), ",", "")
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// coerceInt 单元格 → *int；无值 → nil
func coerceInt(c Cell) *int {
	n, ok := coerceNumber(c)
	if !ok {
		return nil
	}
	v := int(n)
	return &v
}

// intOrZero 导入路径的 0 默认值：无值 → 0
func intOrZero(c Cell) int {
	if p := coerceInt(c); p != nil {
		return *p
	}
	return 0
}

// coerceClock 单元格 → "HH:MM" 时刻文本；无值 → nil
// 文本单元格取第一个合法的 HH:MM 子串（时 0-23、分 0-59）
func coerceClock(c Cell) *string {
	switch c.Kind {
	case CellTime, CellDateTime:
		s := c.Time.Format("15:04")
		return &s
	case CellString:
		return searchClock(c.Str)
	default:
		return nil
	}
}

// searchClock 在任意文本中搜索第一个合法 HH:MM 子串
func searchClock(s string) *string {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil
	}
	formatted := fmt.Sprintf("%02d:%02d", hour, minute)
	return &formatted
}

// coerceDate 单元格 → 日期（零时刻）；无值 → nil
// 文本先剥离 "DATE:-" 前缀，再按 dateLayouts 逐个尝试，首个成功者生效
func coerceDate(c Cell) *time.Time {
	switch c.Kind {
	case CellDate, CellDateTime:
		d := truncateToDate(c.Time)
		return &d
	case CellString:
		s := strings.TrimSpace(strings.ReplaceAll(c.Str, datePrefix, ""))
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				d := truncateToDate(t)
				return &d
			}
		}
		return nil
	default:
		return nil
	}
}

// coerceDateTime 单元格 → 工厂时区的日期时刻；无值 → nil
func coerceDateTime(c Cell) *time.Time {
	loc := plantLocation()
	switch c.Kind {
	case CellDateTime, CellDate:
		t := time.Date(c.Time.Year(), c.Time.Month(), c.Time.Day(),
			c.Time.Hour(), c.Time.Minute(), 0, 0, loc)
		return &t
	case CellString:
		s := strings.TrimSpace(c.Str)
		if s == "" {
			return nil
		}
		for _, layout := range dateTimeLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return &t
			}
		}
		return nil
	default:
		return nil
	}
}

// ── 辅助 ──

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// formatNumber 整值浮点折叠为整数文本（300.0 → "300"）
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
