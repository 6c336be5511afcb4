package framework

import "github.com/lance13c/testforge/internal/scenario"

const javaPackage = "com.testforge.generated"
const javaTestDir = "src/test/java/com/testforge/generated"

func pythonLayout() Layout {
	return Layout{
		ConfigPath:   "config.py",
		ManifestPath: "requirements.txt",
		RunnerPath:   "run_tests.py",
		FileExt:      ".py",
		FilePrefix:   "test_",
	}
}

func javaLayout() Layout {
	return Layout{
		TestDir:      javaTestDir,
		ResourceDir:  "src/test/resources",
		PackagePath:  javaPackage,
		ConfigPath:   javaTestDir + "/TestConfig.java",
		ManifestPath: "dependencies.txt",
		RunnerPath:   "run_tests.sh",
		BuildPath:    "pom.xml",
		SuitePath:    "testng.xml",
		FileExt:      ".java",
	}
}

func seleniumLocators() map[scenario.Strategy]string {
	return map[scenario.Strategy]string{
		scenario.StrategyID:    "By.ID, '%s'",
		scenario.StrategyName:  "By.NAME, '%s'",
		scenario.StrategyClass: "By.CLASS_NAME, '%s'",
		scenario.StrategyCSS:   "By.CSS_SELECTOR, '%s'",
		scenario.StrategyXPath: "By.XPATH, '%s'",
		scenario.StrategyLink:  "By.LINK_TEXT, '%s'",
	}
}

func targets() []Descriptor {
	return []Descriptor{
		{
			ID:          "selenium",
			DisplayName: "Selenium WebDriver (Python)",
			Kind:        scenario.KindWeb,
			Language:    LangPython,
			Dependencies: []string{
				"selenium==4.15.2",
				"pytest==7.4.3",
				"pytest-html==4.1.1",
				"webdriver-manager==4.0.1",
				"pytest-xdist==3.3.1",
			},
			Imports: []string{
				"from selenium import webdriver",
				"from selenium.webdriver.common.by import By",
				"from selenium.webdriver.support.ui import WebDriverWait",
				"from selenium.webdriver.support import expected_conditions as EC",
				"import time",
				"import pytest",
				"",
				"import config",
			},
			Locators: seleniumLocators(),
			Setup: []string{
				"self.driver = webdriver.Chrome()",
				"self.driver.implicitly_wait(config.IMPLICIT_WAIT)",
				"self.wait = WebDriverWait(self.driver, config.EXPLICIT_WAIT)",
			},
			Teardown:          []string{"self.driver.quit()"},
			WaitSeconds:       2,
			ScreenshotOnError: "self.driver.save_screenshot('screenshots/error_%s.png')",
			Templates: Templates{
				Navigate: "self.driver.get('%s')",
				Find:     "element = self.wait.until(EC.element_to_be_clickable((%s)))",
				Click:    "element.click()",
				Clear:    "element.clear()",
				Type:     "element.send_keys('%s')",
				Sleep:    "time.sleep(%d)",
				Comment:  "#",
			},
			Layout:     pythonLayout(),
			RunCommand: "pytest",
		},
		{
			ID:          "appium",
			DisplayName: "Appium (Python)",
			Kind:        scenario.KindMobile,
			Language:    LangPython,
			Dependencies: []string{
				"Appium-Python-Client==3.1.1",
				"pytest==7.4.3",
				"pytest-html==4.1.1",
				"pytest-xdist==3.3.1",
			},
			Imports: []string{
				"from appium import webdriver",
				"from appium.options.android import UiAutomator2Options",
				"from appium.webdriver.common.appiumby import AppiumBy",
				"from selenium.webdriver.support.ui import WebDriverWait",
				"from selenium.webdriver.support import expected_conditions as EC",
				"import time",
				"import pytest",
				"",
				"import config",
			},
			Locators: map[scenario.Strategy]string{
				scenario.StrategyID:    "AppiumBy.ID, '%s'",
				scenario.StrategyName:  "AppiumBy.NAME, '%s'",
				scenario.StrategyClass: "AppiumBy.CLASS_NAME, '%s'",
				scenario.StrategyCSS:   "AppiumBy.CSS_SELECTOR, '%s'",
				scenario.StrategyXPath: "AppiumBy.XPATH, '%s'",
				scenario.StrategyLink:  "AppiumBy.LINK_TEXT, '%s'",
			},
			Setup: []string{
				"options = UiAutomator2Options().load_capabilities(config.ANDROID_CAPS)",
				"self.driver = webdriver.Remote(config.APPIUM_SERVER, options=options)",
				"self.wait = WebDriverWait(self.driver, config.EXPLICIT_WAIT)",
			},
			Teardown:    []string{"self.driver.quit()"},
			WaitSeconds: 2,
			Templates: Templates{
				Find:     "element = self.wait.until(EC.element_to_be_clickable((%s)))",
				Click:    "element.click()",
				Clear:    "element.clear()",
				Type:     "element.send_keys('%s')",
				Sleep:    "time.sleep(%d)",
				OpenNoop: "app is already launched",
				Comment:  "#",
			},
			Layout:     pythonLayout(),
			RunCommand: "pytest",
		},
		{
			ID:          "requests",
			DisplayName: "Requests (Python)",
			Kind:        scenario.KindAPI,
			Language:    LangPython,
			Dependencies: []string{
				"requests==2.31.0",
				"pytest==7.4.3",
				"pytest-html==4.1.1",
				"pytest-xdist==3.3.1",
			},
			Imports: []string{
				"import requests",
				"import time",
				"import pytest",
				"",
				"import config",
			},
			Setup:       []string{"self.session = requests.Session()"},
			Teardown:    []string{"self.session.close()"},
			WaitSeconds: 1,
			Templates: Templates{
				Get:          "response = self.session.get('%s')",
				AssertStatus: "assert response.status_code == 200",
				Sleep:        "time.sleep(%d)",
				Comment:      "#",
			},
			Layout:     pythonLayout(),
			RunCommand: "pytest",
		},
		{
			ID:          "playwright",
			DisplayName: "Playwright (Python)",
			Kind:        scenario.KindWeb,
			Language:    LangPython,
			Dependencies: []string{
				"playwright==1.40.0",
				"pytest==7.4.3",
				"pytest-html==4.1.1",
				"pytest-playwright==0.4.3",
			},
			Imports: []string{
				"from playwright.sync_api import sync_playwright",
				"import time",
				"import pytest",
				"",
				"import config",
			},
			Locators: map[scenario.Strategy]string{
				scenario.StrategyID:    "#%s",
				scenario.StrategyName:  "[name=\"%s\"]",
				scenario.StrategyClass: ".%s",
				scenario.StrategyCSS:   "%s",
				scenario.StrategyXPath: "xpath=%s",
				scenario.StrategyLink:  "text=%s",
			},
			Setup: []string{
				"self.playwright = sync_playwright().start()",
				"self.browser = self.playwright.chromium.launch(headless=config.HEADLESS)",
				"self.page = self.browser.new_page()",
			},
			Teardown: []string{
				"self.browser.close()",
				"self.playwright.stop()",
			},
			WaitSeconds: 2,
			Templates: Templates{
				Navigate: "self.page.goto('%s')",
				Find:     "element = self.page.locator('%s')",
				Click:    "element.click()",
				Clear:    "element.clear()",
				Type:     "element.fill('%s')",
				Sleep:    "time.sleep(%d)",
				Comment:  "#",
			},
			Layout:     pythonLayout(),
			RunCommand: "pytest",
		},
		{
			ID:          "cypress",
			DisplayName: "Cypress",
			Kind:        scenario.KindWeb,
			Language:    LangJavaScript,
			Dependencies: []string{
				"cypress@13.6.0",
				"mocha-junit-reporter@2.2.1",
			},
			Imports: []string{
				"/// <reference types=\"cypress\" />",
			},
			// No xpath or link-text vocabulary; those strategies fall
			// back to id with a warning.
			Locators: map[scenario.Strategy]string{
				scenario.StrategyID:    "#%s",
				scenario.StrategyName:  "[name=\"%s\"]",
				scenario.StrategyClass: ".%s",
				scenario.StrategyCSS:   "%s",
			},
			Setup:       []string{"cy.viewport(1280, 800)"},
			WaitSeconds: 2,
			Templates: Templates{
				Navigate: "cy.visit('%s')",
				Find:     "const element = cy.get('%s')",
				Click:    "element.click()",
				Clear:    "element.clear()",
				Type:     "element.type('%s')",
				Sleep:    "cy.wait(%d * 1000)",
				Comment:  "//",
			},
			Layout: Layout{
				ConfigPath:   "cypress.config.js",
				ManifestPath: "dependencies.txt",
				RunnerPath:   "run_tests.sh",
				FileExt:      ".cy.js",
				FilePrefix:   "test_",
			},
			RunCommand: "npx cypress run",
		},
		{
			ID:          "selenium-java",
			DisplayName: "Selenium WebDriver (Java)",
			Kind:        scenario.KindWeb,
			Language:    LangJava,
			Dependencies: []string{
				"org.seleniumhq.selenium:selenium-java:4.15.0",
				"org.testng:testng:7.8.0",
				"io.github.bonigarcia:webdrivermanager:5.6.2",
			},
			Imports: []string{
				"import org.openqa.selenium.By;",
				"import org.openqa.selenium.WebDriver;",
				"import org.openqa.selenium.WebElement;",
				"import org.openqa.selenium.chrome.ChromeDriver;",
				"import org.openqa.selenium.support.ui.ExpectedConditions;",
				"import org.openqa.selenium.support.ui.WebDriverWait;",
				"import org.testng.Assert;",
				"import org.testng.annotations.AfterMethod;",
				"import org.testng.annotations.BeforeMethod;",
				"import org.testng.annotations.Test;",
				"",
				"import java.time.Duration;",
			},
			Locators: map[scenario.Strategy]string{
				scenario.StrategyID:    "By.id(\"%s\")",
				scenario.StrategyName:  "By.name(\"%s\")",
				scenario.StrategyClass: "By.className(\"%s\")",
				scenario.StrategyCSS:   "By.cssSelector(\"%s\")",
				scenario.StrategyXPath: "By.xpath(\"%s\")",
				scenario.StrategyLink:  "By.linkText(\"%s\")",
			},
			Fields: []string{
				"private WebDriver driver;",
				"private WebDriverWait wait;",
			},
			Setup: []string{
				"driver = new ChromeDriver();",
				"wait = new WebDriverWait(driver, Duration.ofSeconds(TestConfig.EXPLICIT_WAIT));",
			},
			Teardown:    []string{"driver.quit();"},
			WaitSeconds: 2,
			Templates: Templates{
				Navigate: "driver.get(\"%s\");",
				Find:     "WebElement element = wait.until(ExpectedConditions.elementToBeClickable(%s));",
				Click:    "element.click();",
				Clear:    "element.clear();",
				Type:     "element.sendKeys(\"%s\");",
				Sleep:    "Thread.sleep(%d * 1000L);",
				Comment:  "//",
			},
			Layout:     javaLayout(),
			RunCommand: "mvn test",
		},
		{
			ID:          "appium-java",
			DisplayName: "Appium (Java)",
			Kind:        scenario.KindMobile,
			Language:    LangJava,
			Dependencies: []string{
				"io.appium:java-client:9.0.0",
				"org.seleniumhq.selenium:selenium-java:4.15.0",
				"org.testng:testng:7.8.0",
			},
			Imports: []string{
				"import io.appium.java_client.AppiumBy;",
				"import io.appium.java_client.android.AndroidDriver;",
				"import org.openqa.selenium.WebElement;",
				"import org.openqa.selenium.support.ui.ExpectedConditions;",
				"import org.openqa.selenium.support.ui.WebDriverWait;",
				"import org.testng.Assert;",
				"import org.testng.annotations.AfterMethod;",
				"import org.testng.annotations.BeforeMethod;",
				"import org.testng.annotations.Test;",
				"",
				"import java.net.URL;",
				"import java.time.Duration;",
			},
			Locators: map[scenario.Strategy]string{
				scenario.StrategyID:    "AppiumBy.id(\"%s\")",
				scenario.StrategyName:  "AppiumBy.name(\"%s\")",
				scenario.StrategyClass: "AppiumBy.className(\"%s\")",
				scenario.StrategyCSS:   "AppiumBy.cssSelector(\"%s\")",
				scenario.StrategyXPath: "AppiumBy.xpath(\"%s\")",
				scenario.StrategyLink:  "AppiumBy.linkText(\"%s\")",
			},
			Fields: []string{
				"private AndroidDriver driver;",
				"private WebDriverWait wait;",
			},
			Setup: []string{
				"driver = new AndroidDriver(new URL(TestConfig.APPIUM_SERVER), TestConfig.androidOptions());",
				"wait = new WebDriverWait(driver, Duration.ofSeconds(TestConfig.EXPLICIT_WAIT));",
			},
			Teardown:    []string{"driver.quit();"},
			WaitSeconds: 2,
			ConfigImports: []string{
				"import io.appium.java_client.android.options.UiAutomator2Options;",
			},
			ConfigExtras: []string{
				"public static UiAutomator2Options androidOptions() {",
				"    UiAutomator2Options options = new UiAutomator2Options();",
				"    options.setPlatformName(\"Android\");",
				"    options.setPlatformVersionName(\"11.0\");",
				"    options.setDeviceName(\"Android Emulator\");",
				"    options.setAutomationName(\"UiAutomator2\");",
				"    options.setApp(\"path/to/your/app.apk\");",
				"    return options;",
				"}",
			},
			Templates: Templates{
				Find:     "WebElement element = wait.until(ExpectedConditions.elementToBeClickable(%s));",
				Click:    "element.click();",
				Clear:    "element.clear();",
				Type:     "element.sendKeys(\"%s\");",
				Sleep:    "Thread.sleep(%d * 1000L);",
				OpenNoop: "app is already launched",
				Comment:  "//",
			},
			Layout:     javaLayout(),
			RunCommand: "mvn test",
		},
		{
			ID:          "restassured",
			DisplayName: "REST Assured (Java)",
			Kind:        scenario.KindAPI,
			Language:    LangJava,
			Dependencies: []string{
				"io.rest-assured:rest-assured:5.3.2",
				"org.testng:testng:7.8.0",
			},
			Imports: []string{
				"import io.restassured.RestAssured;",
				"import io.restassured.response.Response;",
				"import org.testng.Assert;",
				"import org.testng.annotations.AfterMethod;",
				"import org.testng.annotations.BeforeMethod;",
				"import org.testng.annotations.Test;",
			},
			Setup:       []string{"RestAssured.baseURI = TestConfig.BASE_URL;"},
			Teardown:    []string{"RestAssured.reset();"},
			WaitSeconds: 1,
			Templates: Templates{
				Get:          "Response response = RestAssured.get(\"%s\");",
				AssertStatus: "Assert.assertEquals(response.getStatusCode(), 200);",
				Sleep:        "Thread.sleep(%d * 1000L);",
				Comment:      "//",
			},
			Layout:     javaLayout(),
			RunCommand: "mvn test",
		},
	}
}
