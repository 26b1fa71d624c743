package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/Albiehao/kanban/internal/dto"
)

func TestBindEdu_FallbackToLegacyPath(t *testing.T) {
	var paths []string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/edu/bind" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"status":"ok","message":"绑定成功"}`))
	}))

	msg, err := client.BindEdu(context.Background(), dto.EduBindRequest{StudentID: "2023001", Password: "pwd"})
	if err != nil {
		t.Fatalf("BindEdu 应成功: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/edu/bind" || paths[1] != "/user/bind-edu" {
		t.Errorf("应先试新路径再回退旧路径，实际 %v", paths)
	}
	if msg.Message != "绑定成功" {
		t.Errorf("响应不符: %+v", msg)
	}
}

func TestEduBindingStatus_NewPathPreferred(t *testing.T) {
	var paths []string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"bound":true,"student_id":"2023001"}`))
	}))

	status, err := client.EduBindingStatus(context.Background())
	if err != nil {
		t.Fatalf("EduBindingStatus 应成功: %v", err)
	}
	if len(paths) != 1 || paths[0] != "/edu/bind/status" {
		t.Errorf("新路径成功时不应回退，实际 %v", paths)
	}
	if !status.Bound {
		t.Error("应解出绑定状态")
	}
}
