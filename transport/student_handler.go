package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/student-api/constant"
	"github.com/muhammadheryan/student-api/model"
	"github.com/muhammadheryan/student-api/utils/errors"
)

const (
	profilePicField = "profilePic"
	formMemory      = 1 << 20
	// formOverhead bounds the non-file part of a multipart body.
	formOverhead = 1 << 20
)

// CreateStudent handler
// @Summary Create student
// @Description Create a student, optionally with a profile picture
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param email formData string true "Email"
// @Param phone formData string true "Phone (10-15 digits)"
// @Param gender formData string true "male, female or other"
// @Param profilePic formData file false "Profile picture (image, max 2 MiB)"
// @Success 201 {object} transport.Response{data=model.Student}
// @Failure 400 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /api/students [post]
func (s *RestHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, profilePic, err := s.parseStudentBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StudentApp.CreateStudent(ctx, createRequest(body), profilePic)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Student created successfully", res)
}

// ListStudents handler
// @Summary List students
// @Description Paginated students, five per page, searchable by first or last name
// @Tags Students
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Case-insensitive name filter"
// @Success 200 {object} transport.Response{data=model.StudentListResponse}
// @Failure 404 {object} transport.Response
// @Router /api/students [get]
func (s *RestHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil {
		page = 1
	}

	res, err := s.StudentApp.ListStudents(ctx, page, query.Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Students fetched successfully", res)
}

// GetStudent handler
// @Summary Get student
// @Tags Students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} transport.Response{data=model.Student}
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/students/{id} [get]
func (s *RestHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.StudentApp.GetStudent(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Student fetched successfully", res)
}

// UpdateStudent handler
// @Summary Update student
// @Description Partial update; a new profile picture replaces the previous one
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Student id"
// @Param firstName formData string false "First name"
// @Param lastName formData string false "Last name"
// @Param email formData string false "Email"
// @Param phone formData string false "Phone (10-15 digits)"
// @Param gender formData string false "male, female or other"
// @Param profilePic formData file false "Profile picture (image, max 2 MiB)"
// @Success 200 {object} transport.Response{data=model.Student}
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/students/{id} [put]
func (s *RestHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, profilePic, err := s.parseStudentBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StudentApp.UpdateStudent(ctx, mux.Vars(r)["id"], body, profilePic)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Student updated successfully", res)
}

// DeleteStudent handler
// @Summary Delete student
// @Tags Students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/students/{id} [delete]
func (s *RestHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.StudentApp.DeleteStudent(ctx, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Student deleted successfully", struct{}{})
}

// parseStudentBody reads a multipart, urlencoded or JSON student body. Fields
// that were not sent stay nil. The returned name is a stored upload the caller
// owns from here on.
func (s *RestHandler) parseStudentBody(w http.ResponseWriter, r *http.Request) (*model.UpdateStudentRequest, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+formOverhead)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(formMemory); err != nil {
			return nil, "", bodyError(err)
		}
		body := requestFromValues(r.MultipartForm.Value)
		profilePic, err := s.storeUpload(r)
		if err != nil {
			return nil, "", err
		}
		return body, profilePic, nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, "", bodyError(err)
		}
		return requestFromValues(r.PostForm), "", nil

	case "application/json":
		var body model.UpdateStudentRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, "", bodyError(err)
		}
		return &body, "", nil
	}

	return &model.UpdateStudentRequest{}, "", nil
}

func (s *RestHandler) storeUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile(profilePicField)
	if stderrors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}
	defer file.Close()

	if header.Size > s.maxUpload {
		return "", errors.SetCustomError(constant.ErrFileTooLarge)
	}

	return s.FileApp.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return errors.SetCustomError(constant.ErrFileTooLarge)
	}
	return errors.SetCustomError(constant.ErrInvalidRequest)
}

func requestFromValues(values url.Values) *model.UpdateStudentRequest {
	field := func(key string) *string {
		v, ok := values[key]
		if !ok || len(v) == 0 {
			return nil
		}
		return &v[0]
	}

	return &model.UpdateStudentRequest{
		FirstName: field("firstName"),
		LastName:  field("lastName"),
		Email:     field("email"),
		Phone:     field("phone"),
		Gender:    field("gender"),
	}
}

func createRequest(body *model.UpdateStudentRequest) *model.CreateStudentRequest {
	value := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}

	return &model.CreateStudentRequest{
		FirstName: value(body.FirstName),
		LastName:  value(body.LastName),
		Email:     value(body.Email),
		Phone:     value(body.Phone),
		Gender:    value(body.Gender),
	}
}
