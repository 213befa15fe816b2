package handlers

// ErrorResponse is the standard format for unhandled API errors.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the envelope of the public endpoints.
type APIResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	StudentID string `json:"student_id,omitempty"`
}

// UpdateScheduleResponse reports a changed meeting link.
type UpdateScheduleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	QRCode  string `json:"qr_code,omitempty"`
}

// EmailsResponse lists student addresses.
type EmailsResponse struct {
	Success bool     `json:"success"`
	Emails  []string `json:"emails"`
	Count   int      `json:"count"`
}

// User-facing messages produced by the handlers.
const (
	MsgInvalidBody     = "بيانات غير صالحة"
	MsgServerError     = "حدث خطأ في الخادم. يرجى المحاولة لاحقاً"
	MsgErrorPrefix     = "حدث خطأ: "
	MsgBadCredentials  = "اسم المستخدم أو كلمة المرور خاطئة"
	MsgLoggedOut       = "تم تسجيل الخروج بنجاح"
	MsgClassNotFound   = "الحصة غير موجودة"
	MsgUnknownStudent  = "معرف الطالب غير صحيح"
	MsgScheduleFailed  = "حدث خطأ في تحميل الجدول"
	MsgExportFailed    = "خطأ في التصدير: "
	MsgSubscribeFailed = "حدث خطأ"
)
