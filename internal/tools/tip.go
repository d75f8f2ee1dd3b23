package tools

import (
	"math"

	apperrors "github.com/wfunc/exercise-hub/internal/errors"
)

// TipRequest 小费计算入参
type TipRequest struct {
	Amount        float64 `json:"amount" form:"amount"`
	TipPercentage int     `json:"tip_percentage" form:"tip_percentage"`
	People        int     `json:"people" form:"people"`
}

// TipResult 小费计算结果，所有金额保留两位小数
type TipResult struct {
	Amount        float64 `json:"amount"`
	TipPercentage int     `json:"tip_percentage"`
	People        int     `json:"people"`
	TotalTip      float64 `json:"total_tip"`
	TotalWithTip  float64 `json:"total_with_tip"`
	PerPerson     float64 `json:"per_person"`
}

// round2 四舍五入到分
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateTip 计算小费、总额和人均金额
func CalculateTip(req *TipRequest) (*TipResult, error) {
	if req.Amount < 0 {
		return nil, apperrors.New(apperrors.ErrFieldRange).WithDetails("金额不能为负数")
	}
	if req.TipPercentage < 0 || req.TipPercentage > 100 {
		return nil, apperrors.New(apperrors.ErrFieldRange).WithDetails("小费比例必须在0到100之间")
	}
	if req.People < 1 || req.People > 100 {
		return nil, apperrors.New(apperrors.ErrFieldRange).WithDetails("人数必须在1到100之间")
	}

	totalTip := round2(req.Amount * float64(req.TipPercentage) / 100)
	totalWithTip := round2(req.Amount + totalTip)
	perPerson := round2(totalWithTip / float64(req.People))

	return &TipResult{
		Amount:        req.Amount,
		TipPercentage: req.TipPercentage,
		People:        req.People,
		TotalTip:      totalTip,
		TotalWithTip:  totalWithTip,
		PerPerson:     perPerson,
	}, nil
}
