package service

import (
	"fmt"
	"time"
)

// Clock 현재 시각 추상화. 월 경계 계산이 전부 이 인터페이스를 거치므로
// 테스트에서 날짜를 고정할 수 있다.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// DefaultClock 실제 시각을 사용하는 기본 Clock
var DefaultClock Clock = realClock{}

// monthStart 해당 시각이 속한 달의 1일 00:00
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd 해당 월 1일을 받아 그 달의 마지막 날을 돌려준다
func MonthEnd(month time.Time) time.Time {
	return monthStart(month).AddDate(0, 1, -1)
}

// CurrentMonthRange 이번 달 1일 ~ 마지막 날. 실시간 잔액/사용액 표시에 쓴다.
func CurrentMonthRange(clock Clock) (start, end time.Time) {
	start = monthStart(clock.Now())
	return start, MonthEnd(start)
}

// TargetMonthStart 정산 대상월(지난달)의 1일.
// 지난달 지출을 이번달에 정산하므로 대상월은 항상 지난달이다.
// 1월에 호출하면 작년 12월이 된다.
func TargetMonthStart(clock Clock) time.Time {
	return monthStart(clock.Now()).AddDate(0, -1, 0)
}

// TargetMonthRange 대상월 1일 ~ 마지막 날
func TargetMonthRange(clock Clock) (start, end time.Time) {
	start = TargetMonthStart(clock)
	return start, MonthEnd(start)
}

// TargetMonthLabel 대상월 표시 문자열 (예: "2024년 12월")
func TargetMonthLabel(clock Clock) string {
	target := TargetMonthStart(clock)
	return fmt.Sprintf("%d년 %d월", target.Year(), int(target.Month()))
}
